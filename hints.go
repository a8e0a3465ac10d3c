package tooldoc

import (
	"reflect"
	"strings"
)

// descriptorForType maps a live Go type to its TypeDescriptor. The rule set
// is a fixed enumeration: scalars, pointer (optional), slice (list), array
// (tuple shape, unsupported). Recursion is bounded because each call strictly
// reduces to the element type.
func descriptorForType(t reflect.Type) TypeDescriptor {
	switch t.Kind() {
	case reflect.String:
		return Primitive{Kind: KindString}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Primitive{Kind: KindInteger}
	case reflect.Float32, reflect.Float64:
		return Primitive{Kind: KindFloat}
	case reflect.Bool:
		return Primitive{Kind: KindBoolean}
	case reflect.Pointer:
		inner := descriptorForType(t.Elem())
		switch d := inner.(type) {
		case Unsupported:
			return d
		case Optional:
			// **T collapses to a single optional level.
			return d
		default:
			return Optional{Elem: inner}
		}
	case reflect.Slice:
		return List{Elem: descriptorForType(t.Elem())}
	case reflect.Array:
		return Unsupported{Reason: "tuple not supported"}
	default:
		return Unsupported{Reason: "unrecognized annotation " + t.String()}
	}
}

// descriptorForToken maps a documented type token (e.g. "str", "int",
// "Optional[str]", "list[int]") to a TypeDescriptor. Used when a field has
// no live type (declared any) and the docstring is the only authority.
// Matching is best-effort against the fixed primitive names plus one level
// of Optional[...] / list[...] wrapping, handled recursively.
func descriptorForToken(token string) TypeDescriptor {
	tok := strings.TrimSpace(token)
	if tok == "" {
		return Unsupported{Reason: "missing type annotation"}
	}
	if inner, ok := unwrapToken(tok, "optional"); ok {
		switch d := descriptorForToken(inner).(type) {
		case Unsupported:
			return d
		case Optional:
			return d
		default:
			return Optional{Elem: d}
		}
	}
	if inner, ok := unwrapToken(tok, "list"); ok {
		return List{Elem: descriptorForToken(inner)}
	}
	switch strings.ToLower(tok) {
	case "str", "string":
		return Primitive{Kind: KindString}
	case "int", "integer":
		return Primitive{Kind: KindInteger}
	case "float", "number", "double":
		return Primitive{Kind: KindFloat}
	case "bool", "boolean":
		return Primitive{Kind: KindBoolean}
	case "tuple":
		return Unsupported{Reason: "tuple not supported"}
	default:
		return Unsupported{Reason: "unrecognized annotation " + tok}
	}
}

// unwrapToken returns the bracketed inner token of wrapper[inner] when tok
// has the given wrapper name (case-insensitive).
func unwrapToken(tok, wrapper string) (string, bool) {
	if len(tok) < len(wrapper)+2 || !strings.EqualFold(tok[:len(wrapper)], wrapper) {
		return "", false
	}
	rest := tok[len(wrapper):]
	if !strings.HasPrefix(rest, "[") || !strings.HasSuffix(rest, "]") {
		return "", false
	}
	return rest[1 : len(rest)-1], true
}
