package tooldoc

import "fmt"

// PrimitiveKind enumerates the scalar types a parameter may have.
type PrimitiveKind int

const (
	KindString PrimitiveKind = iota
	KindInteger
	KindFloat
	KindBoolean
)

// String returns the JSON Schema type name for the kind.
func (k PrimitiveKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "number"
	case KindBoolean:
		return "boolean"
	default:
		return fmt.Sprintf("PrimitiveKind(%d)", int(k))
	}
}

// TypeDescriptor is the canonical representation of a parameter type,
// independent of how the type was declared (struct field or doc token).
// It is a closed sum: Primitive, Optional, List, Unsupported. Consumers
// switch exhaustively over the concrete types; adding a new shape is a
// compile-time-checked, localized change.
type TypeDescriptor interface {
	fmt.Stringer
	// sealed limits implementations to this package.
	sealed()
}

// Primitive is a scalar parameter type.
type Primitive struct {
	Kind PrimitiveKind
}

// Optional wraps a descriptor whose value may be null. It never wraps
// another Optional: nested optionality collapses to one level.
type Optional struct {
	Elem TypeDescriptor
}

// List is a homogeneous sequence of Elem.
type List struct {
	Elem TypeDescriptor
}

// Unsupported marks a type the mapper cannot express. Building a tool with
// an Unsupported parameter fails; Reason says why.
type Unsupported struct {
	Reason string
}

func (Primitive) sealed()   {}
func (Optional) sealed()    {}
func (List) sealed()        {}
func (Unsupported) sealed() {}

func (p Primitive) String() string   { return p.Kind.String() }
func (o Optional) String() string    { return "optional[" + o.Elem.String() + "]" }
func (l List) String() string        { return "list[" + l.Elem.String() + "]" }
func (u Unsupported) String() string { return "unsupported(" + u.Reason + ")" }

// IsOptional reports whether d is Optional-wrapped.
func IsOptional(d TypeDescriptor) bool {
	_, ok := d.(Optional)
	return ok
}

// unsupportedReason returns the reason if d contains an Unsupported node
// anywhere, or "" if the descriptor is fully resolved.
func unsupportedReason(d TypeDescriptor) string {
	switch t := d.(type) {
	case Primitive:
		return ""
	case Optional:
		return unsupportedReason(t.Elem)
	case List:
		return unsupportedReason(t.Elem)
	case Unsupported:
		return t.Reason
	default:
		panic(fmt.Sprintf("tooldoc: unknown TypeDescriptor %T", d))
	}
}
