package tooldoc

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type weatherArgs struct {
	City string  `json:"city"`
	Town *string `json:"town"`
}

const weatherDoc = `Get current weather for a city.

Args:
    city(str): the city name
    town(Optional[str]): optional town inside the city
`

func getWeather(_ context.Context, args weatherArgs) (string, error) {
	if args.Town != nil {
		return "Sunny in " + *args.Town + ", " + args.City + ".", nil
	}
	return "Sunny in " + args.City + ".", nil
}

func TestNew_RoundTrip(t *testing.T) {
	tool, err := New(getWeather, weatherDoc)
	require.NoError(t, err)
	require.NotNil(t, tool)

	assert.Equal(t, "get_weather", tool.Name(), "name defaults to the function identifier")
	assert.Equal(t, "Get current weather for a city.", tool.Description())

	schema := tool.Schema()
	require.Len(t, schema.Parameters, 2)

	city := schema.Parameters[0]
	assert.Equal(t, "city", city.Name)
	assert.Equal(t, Primitive{Kind: KindString}, city.Type)
	assert.True(t, city.Required)
	assert.Equal(t, "the city name", city.Description)

	town := schema.Parameters[1]
	assert.Equal(t, "town", town.Name)
	assert.Equal(t, Optional{Elem: Primitive{Kind: KindString}}, town.Type)
	assert.False(t, town.Required)
	assert.Equal(t, "optional town inside the city", town.Description)
}

func TestNew_WithName(t *testing.T) {
	tool, err := New(getWeather, weatherDoc, WithName("weather_now"))
	require.NoError(t, err)
	assert.Equal(t, "weather_now", tool.Name())
}

func TestNew_AnonymousFunctionNeedsName(t *testing.T) {
	tool, err := New(func(_ context.Context, _ struct{}) (string, error) {
		return "pong", nil
	}, "Ping.", WithName("ping"))
	require.NoError(t, err)
	assert.Equal(t, "ping", tool.Name())
}

func TestNew_NoParameters(t *testing.T) {
	tool, err := New(func(_ context.Context, _ struct{}) (string, error) {
		return "pong", nil
	}, "  Respond with pong.  ", WithName("ping"))
	require.NoError(t, err)
	schema := tool.Schema()
	assert.Empty(t, schema.Parameters)
	assert.Equal(t, "Respond with pong.", tool.Description(), "description is the trimmed summary")
}

func TestNew_NoBlankLineSeparator(t *testing.T) {
	// Whole docstring is summary; parameters get empty descriptions, no error.
	tool, err := New(getWeather, "Get weather.\nNo args block follows.")
	require.NoError(t, err)
	assert.Equal(t, "Get weather.\nNo args block follows.", tool.Description())
	schema := tool.Schema()
	require.Len(t, schema.Parameters, 2)
	assert.Empty(t, schema.Parameters[0].Description)
	assert.Empty(t, schema.Parameters[1].Description)
}

func TestNew_EmptyDocstring(t *testing.T) {
	tool, err := New(getWeather, "")
	require.NoError(t, err)
	assert.Empty(t, tool.Description())
}

func TestNew_MalformedDocstring(t *testing.T) {
	_, err := New(getWeather, "Get weather.\n\nArgs:\n    nothing parseable here\n")
	require.Error(t, err)
	assert.True(t, IsMalformedDocstring(err))
	assert.Contains(t, err.Error(), "get_weather")
}

func TestNew_TupleParameterFails(t *testing.T) {
	type args struct {
		Point [2]float64 `json:"point"`
	}
	_, err := New(func(_ context.Context, _ args) (string, error) {
		return "", nil
	}, `Plot a point.

Args:
    point(tuple): x and y
`, WithName("plot"))
	require.Error(t, err)
	assert.True(t, IsUnsupportedType(err))
	var pte *ParameterTypeError
	require.ErrorAs(t, err, &pte)
	assert.Equal(t, "plot", pte.Tool)
	assert.Equal(t, "point", pte.Param)
}

func TestNew_NonStructArgs(t *testing.T) {
	_, err := New(func(_ context.Context, _ int) (int, error) {
		return 0, nil
	}, "Bad.", WithName("bad"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a struct")
}

func TestNew_NilFunction(t *testing.T) {
	_, err := New[struct{}, string](nil, "Nil.")
	require.Error(t, err)
}

func TestNew_Idempotent(t *testing.T) {
	t1, err := New(getWeather, weatherDoc)
	require.NoError(t, err)
	t2, err := New(getWeather, weatherDoc)
	require.NoError(t, err)
	require.NotSame(t, t1, t2)
	assert.Equal(t, t1.Schema(), t2.Schema(), "two builds of the same function are structurally equal")
	assert.Equal(t, t1.Parameters(), t2.Parameters())
}

func TestTool_Execute_MatchesDirectCall(t *testing.T) {
	tool, err := New(getWeather, weatherDoc)
	require.NoError(t, err)

	out, err := tool.Execute(context.Background(), []byte(`{"city":"Shanghai"}`))
	require.NoError(t, err)
	var viaTool string
	require.NoError(t, json.Unmarshal(out, &viaTool))

	direct, err := getWeather(context.Background(), weatherArgs{City: "Shanghai"})
	require.NoError(t, err)
	assert.Equal(t, direct, viaTool)
}

func TestTool_Execute_ErrorsPropagateUnchanged(t *testing.T) {
	boom := assert.AnError
	tool, err := New(func(_ context.Context, _ struct{}) (string, error) {
		return "", boom
	}, "Always fails.", WithName("boom"))
	require.NoError(t, err)
	_, err = tool.Execute(context.Background(), []byte(`{}`))
	require.Error(t, err)
	assert.Same(t, boom, err, "the function's error is not wrapped or transformed")
}

func TestTool_Execute_InvalidJSON(t *testing.T) {
	tool, err := New(getWeather, weatherDoc)
	require.NoError(t, err)
	_, err = tool.Execute(context.Background(), []byte(`{invalid`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode arguments")
}

func TestTool_Execute_EmptyArgs(t *testing.T) {
	tool, err := New(func(_ context.Context, _ struct{}) (string, error) {
		return "pong", nil
	}, "Ping.", WithName("ping"))
	require.NoError(t, err)
	out, err := tool.Execute(context.Background(), nil)
	require.NoError(t, err)
	assert.JSONEq(t, `"pong"`, string(out))
}

func TestTool_Parameters_ReturnsCopy(t *testing.T) {
	tool, err := New(getWeather, weatherDoc)
	require.NoError(t, err)
	params := tool.Parameters()
	require.NotNil(t, params)
	params["mutated"] = true
	params2 := tool.Parameters()
	_, ok := params2["mutated"]
	require.False(t, ok)
}

func TestTool_Schema_ReturnsCopy(t *testing.T) {
	tool, err := New(getWeather, weatherDoc)
	require.NoError(t, err)
	s := tool.Schema()
	s.Parameters[0].Description = "mutated"
	s2 := tool.Schema()
	assert.Equal(t, "the city name", s2.Parameters[0].Description)
}

func TestFuncName(t *testing.T) {
	assert.Equal(t, "get_weather", funcName(getWeather))
}

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"GetWeather", "get_weather"},
		{"getWeather", "get_weather"},
		{"add", "add"},
		{"HTTPGet", "h_t_t_p_get"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.out, snakeCase(tt.in))
		})
	}
}
