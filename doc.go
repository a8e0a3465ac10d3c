// Package tooldoc turns an annotated Go function into a self-describing tool
// for LLM function calling: a callable bundled with a name, a description,
// and a machine-readable parameter schema.
//
// # Overview
//
// The schema is extracted from two loosely structured inputs and reconciled
// into one: the argument struct (names, types, defaults) and the function's
// doc text (summary plus an Args block of name(type): description entries).
// The struct is authoritative for names, order, types, and defaults; the doc
// text supplies the tool description and per-parameter descriptions, and the
// documented type token stands in where a field is declared any.
//
// Pipeline: Go function + doc text → New (reflection + doc parsing + schema)
// → Tool → Registry → Execute (unmarshal, call, marshal) → ToolResult.
//
// # Key concepts
//
//   - Fail fast: all parsing happens once, inside New. A malformed doc block
//     (ErrMalformedDocstring) or an inexpressible parameter type such as a
//     fixed-size array (ErrUnsupportedType) fails construction; no partial
//     Tool is ever returned.
//   - Immutable tools: a built Tool never changes and is safe for concurrent
//     read and Execute; the wrapper holds no per-call state.
//   - Pass-through invocation: Execute decodes arguments with encoding/json
//     and forwards to the function unchanged. Errors from the function
//     propagate as-is; no argument values are validated beyond JSON coercion.
//
// Supported parameter types are a fixed enumeration: string, integer, float,
// boolean scalars, *T for optional (nullable) values, []T for lists. Arrays
// ([N]T, the tuple shape) are deliberately unsupported; extend
// descriptorForType to change that.
//
// # Example
//
//	type Args struct {
//	    City string  `json:"city"`
//	    Town *string `json:"town"`
//	}
//	tool, err := tooldoc.New(func(_ context.Context, a Args) (string, error) {
//	    return "Sunny in " + a.City, nil
//	}, `Get current weather for a city.
//
//	Args:
//	    city(str): the city name
//	    town(Optional[str]): optional town inside the city
//	`, tooldoc.WithName("get_weather"))
//	if err != nil { ... }
//	reg := tooldoc.NewRegistry()
//	reg.Register(tool)
//	res := reg.Execute(ctx, tooldoc.ToolCall{ID: "1", ToolName: "get_weather", Args: []byte(`{"city":"Shanghai"}`)})
package tooldoc
