package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skobelev/tooldoc"
)

func TestMockTool_Defaults(t *testing.T) {
	m := &MockTool{}
	assert.Equal(t, "mock", m.Name())
	assert.Empty(t, m.Description())
	assert.Empty(t, m.Parameters())
	out, err := m.Execute(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestMockTool_ExecuteFn(t *testing.T) {
	m := &MockTool{
		NameVal: "echo",
		ExecuteFn: func(_ context.Context, args []byte) ([]byte, error) {
			return args, nil
		},
	}
	out, err := m.Execute(context.Background(), []byte(`{"x":1}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":1}`, string(out))
}

func TestNewTestRegistry(t *testing.T) {
	m := &MockTool{NameVal: "mock_tool"}
	reg := NewTestRegistry(m)
	got, ok := reg.GetTool("mock_tool")
	require.True(t, ok)
	assert.Equal(t, "mock_tool", got.Name())
	res := reg.Execute(context.Background(), tooldoc.ToolCall{ID: "1", ToolName: "mock_tool", Args: []byte(`{}`)})
	require.NoError(t, res.Error)
}
