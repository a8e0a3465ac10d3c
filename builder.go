package tooldoc

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"reflect"
	"runtime"
	"strings"
	"time"
)

// tool is the implementation of Tool built by New. All fields are set once
// at build time and never mutated; the wrapper itself holds no per-call state.
type tool struct {
	schema    Schema
	schemaMap map[string]any
	execute   func(context.Context, []byte) ([]byte, error)
	opts      toolOptions
}

// New builds a Tool from a typed function and its doc text. This is the sole
// construction path: all docstring and type parsing happens here, once, and
// every failure surfaces here (never at call time). T must be a struct; its
// fields are the tool's parameters (json tag or field name, declaration
// order, default tag for default values). doc holds the summary and an Args
// block of name(type): description entries, split on the first blank line.
// The tool name defaults to fn's own identifier; override with WithName.
func New[T any, R any](
	fn func(ctx context.Context, args T) (R, error),
	doc string,
	opts ...ToolOption,
) (Tool, error) {
	var o toolOptions
	for _, opt := range opts {
		opt(&o)
	}
	if fn == nil {
		return nil, fmt.Errorf("tool function must not be nil")
	}
	name := o.name
	if name == "" {
		name = funcName(fn)
	}
	typ := reflect.TypeOf(*new(T))
	if typ == nil || typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("tool %q: argument type %v is not a struct", name, typ)
	}

	summary, block, hasBlock := splitDocstring(doc)
	var docs []paramDoc
	if hasBlock {
		var err error
		docs, err = parseParamDocs(name, block)
		if err != nil {
			return nil, err
		}
	}
	params, err := buildParameters(name, typ, docs)
	if err != nil {
		return nil, err
	}
	schema := Schema{Name: name, Description: summary, Parameters: params}
	m, err := schemaMap(schema, o.strict)
	if err != nil {
		return nil, err
	}

	execute := func(ctx context.Context, argsJSON []byte) ([]byte, error) {
		var args T
		if len(argsJSON) > 0 {
			if err := json.Unmarshal(argsJSON, &args); err != nil {
				return nil, fmt.Errorf("tool %q: decode arguments: %w", name, err)
			}
		}
		res, err := fn(ctx, args)
		if err != nil {
			// The function's own failures pass through unchanged.
			return nil, err
		}
		b, err := json.Marshal(res)
		if err != nil {
			return nil, &SystemError{Err: err}
		}
		return b, nil
	}
	return &tool{
		schema:    schema,
		schemaMap: m,
		execute:   execute,
		opts:      o,
	}, nil
}

func (t *tool) Name() string        { return t.schema.Name }
func (t *tool) Description() string { return t.schema.Description }

// Schema returns a copy; ParameterSpec values are immutable.
func (t *tool) Schema() Schema {
	s := t.schema
	s.Parameters = append([]ParameterSpec(nil), t.schema.Parameters...)
	return s
}

// Parameters returns a shallow copy of the JSON Schema (top-level keys only).
// Nested maps (e.g. under "properties") are shared; callers must not mutate them.
func (t *tool) Parameters() map[string]any { return maps.Clone(t.schemaMap) }

func (t *tool) Execute(ctx context.Context, argsJSON []byte) ([]byte, error) {
	return t.execute(ctx, argsJSON)
}

func (t *tool) Timeout() time.Duration { return t.opts.timeout }
func (t *tool) Tags() []string         { return append([]string(nil), t.opts.tags...) }
func (t *tool) Version() string        { return t.opts.version }
func (t *tool) IsDangerous() bool      { return t.opts.dangerous }

// funcName derives the tool name from the function's own identifier, e.g.
// "github.com/acme/weather.GetWeather" -> "get_weather". Method values lose
// their "-fm" suffix; anonymous functions keep their "funcN" name, which
// callers should override with WithName.
func funcName(fn any) string {
	pc := reflect.ValueOf(fn).Pointer()
	f := runtime.FuncForPC(pc)
	if f == nil {
		return ""
	}
	name := f.Name()
	name = strings.TrimSuffix(name, "-fm")
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return snakeCase(name)
}

// snakeCase converts GetWeather or getWeather to get_weather.
func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

var (
	_ Tool         = (*tool)(nil)
	_ ToolMetadata = (*tool)(nil)
)
