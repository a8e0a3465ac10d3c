package tooldoc

import (
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
)

// buildParameters merges the argument struct's fields (names, live types,
// default tags) with the parsed parameter docs into the canonical parameter
// list, in field declaration order. The struct is authoritative for names,
// order, types, and defaults; the docs are authoritative for descriptions
// and, where a field is declared any, for the type token. Documented names
// with no matching field are ignored. Any parameter resolving to Unsupported
// fails construction.
func buildParameters(toolName string, typ reflect.Type, docs []paramDoc) ([]ParameterSpec, error) {
	byName := make(map[string]paramDoc, len(docs))
	for _, d := range docs {
		byName[d.Name] = d
	}
	var params []ParameterSpec
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Name
		if tag := strings.Split(field.Tag.Get("json"), ",")[0]; tag != "" {
			if tag == "-" {
				continue
			}
			name = tag
		}
		doc := byName[name]
		var desc TypeDescriptor
		if isAnyType(field.Type) {
			// No live type; the documented token is the only authority.
			desc = descriptorForToken(doc.Type)
		} else {
			desc = descriptorForType(field.Type)
		}
		if reason := unsupportedReason(desc); reason != "" {
			return nil, &ParameterTypeError{Tool: toolName, Param: name, Reason: reason}
		}
		spec := ParameterSpec{
			Name:        name,
			Type:        desc,
			Description: doc.Desc,
		}
		if raw, ok := field.Tag.Lookup("default"); ok {
			def, err := parseDefault(raw, desc)
			if err != nil {
				return nil, fmt.Errorf("tool %q: parameter %q: %w: %q is not a valid %s",
					toolName, name, ErrInvalidDefault, raw, desc)
			}
			spec.Default = def
			spec.HasDefault = true
		}
		// Optional parameters are not required even without a default; the
		// required tag re-asserts requiredness for an optional parameter.
		spec.Required = !spec.HasDefault && !IsOptional(desc)
		if !spec.HasDefault && IsOptional(desc) && field.Tag.Get("required") == "true" {
			spec.Required = true
		}
		params = append(params, spec)
	}
	return params, nil
}

// isAnyType reports whether t is the empty interface (a field with no
// usable live type).
func isAnyType(t reflect.Type) bool {
	return t.Kind() == reflect.Interface && t.NumMethod() == 0
}

// parseDefault interprets a default tag literal against the resolved
// descriptor. Optional accepts "null" (and its inner type's literals);
// lists take JSON array syntax.
func parseDefault(raw string, desc TypeDescriptor) (any, error) {
	switch d := desc.(type) {
	case Primitive:
		switch d.Kind {
		case KindString:
			return raw, nil
		case KindInteger:
			return strconv.Atoi(raw)
		case KindFloat:
			return strconv.ParseFloat(raw, 64)
		case KindBoolean:
			return strconv.ParseBool(raw)
		default:
			return nil, fmt.Errorf("unknown primitive kind %v", d.Kind)
		}
	case Optional:
		switch strings.ToLower(raw) {
		case "null", "none", "nil":
			return nil, nil
		}
		return parseDefault(raw, d.Elem)
	case List:
		var v []any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return nil, err
		}
		return v, nil
	case Unsupported:
		return nil, fmt.Errorf("unsupported type %s", d.Reason)
	default:
		panic(fmt.Sprintf("tooldoc: unknown TypeDescriptor %T", desc))
	}
}

// jsonSchema renders the parameter list as a JSON Schema object node.
func (s Schema) jsonSchema() *jsonschema.Schema {
	root := &jsonschema.Schema{
		Type:       "object",
		Properties: make(map[string]*jsonschema.Schema, len(s.Parameters)),
	}
	for _, p := range s.Parameters {
		prop := schemaForDescriptor(p.Type)
		prop.Description = p.Description
		if p.HasDefault {
			if b, err := json.Marshal(p.Default); err == nil {
				prop.Default = b
			}
		}
		root.Properties[p.Name] = prop
		if p.Required {
			root.Required = append(root.Required, p.Name)
		}
	}
	return root
}

// schemaForDescriptor converts one TypeDescriptor to a JSON Schema node.
// Optional becomes a two-entry type array with "null". Unsupported never
// reaches here: buildParameters rejects it first.
func schemaForDescriptor(d TypeDescriptor) *jsonschema.Schema {
	switch t := d.(type) {
	case Primitive:
		return &jsonschema.Schema{Type: t.Kind.String()}
	case Optional:
		inner := schemaForDescriptor(t.Elem)
		inner.Types = []string{inner.Type, "null"}
		inner.Type = ""
		return inner
	case List:
		return &jsonschema.Schema{Type: "array", Items: schemaForDescriptor(t.Elem)}
	case Unsupported:
		panic("tooldoc: Unsupported descriptor reached schema rendering: " + t.Reason)
	default:
		panic(fmt.Sprintf("tooldoc: unknown TypeDescriptor %T", d))
	}
}

// schemaMap marshals the schema to the map form LLM providers take, applies
// strict mode if requested, and compiles the result once as a sanity check.
// Compilation failures surface at build time, never at call time.
func schemaMap(s Schema, strict bool) (map[string]any, error) {
	data, err := json.Marshal(s.jsonSchema())
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if strict {
		applyStrictMode(m)
	}
	if err := compileRawSchema(m); err != nil {
		return nil, fmt.Errorf("tool %q: generated schema does not compile: %w", s.Name, err)
	}
	return m, nil
}

// walkSchema recursively visits every map node in the schema tree.
func walkSchema(schemaMap map[string]any, visit func(map[string]any)) {
	if schemaMap == nil {
		return
	}
	visit(schemaMap)
	for _, val := range schemaMap {
		switch v := val.(type) {
		case map[string]any:
			walkSchema(v, visit)
		case []any:
			for _, item := range v {
				if m, ok := item.(map[string]any); ok {
					walkSchema(m, visit)
				}
			}
		}
	}
}

// applyStrictMode sets additionalProperties: false and makes every property
// required for every object in the schema (OpenAI Structured Outputs).
func applyStrictMode(schemaMap map[string]any) {
	walkSchema(schemaMap, func(n map[string]any) {
		props, isObj := n["properties"].(map[string]any)
		if !isObj {
			return
		}
		n["additionalProperties"] = false
		keys := make([]string, 0, len(props))
		for k := range props {
			keys = append(keys, k)
		}
		if len(keys) == 0 {
			return
		}
		slices.Sort(keys)
		required := make([]any, len(keys))
		for i, k := range keys {
			required[i] = k
		}
		n["required"] = required
	})
}

// compileRawSchema compiles a raw JSON Schema map to verify it resolves.
// The map is not mutated.
func compileRawSchema(schemaMap map[string]any) error {
	data, err := json.Marshal(schemaMap)
	if err != nil {
		return err
	}
	var s jsonschema.Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	_, err = s.Resolve(nil)
	return err
}
