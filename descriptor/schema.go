package descriptor

import (
	"slices"
	"strings"

	"github.com/speakeasy-api/openapi/sequencedmap"
)

// SchemaKind identifies which variant of the schema model a Schema value
// represents. Every consumer switches over the kind instead of probing for
// optional fields.
type SchemaKind int

const (
	// KindInvalid represents a nil or unrecognizable schema
	KindInvalid SchemaKind = iota
	// KindScalar is a schema whose type is a scalar keyword ("string",
	// "integer", ...) or absent entirely
	KindScalar
	// KindObject is a schema with type "object"
	KindObject
	// KindArray is a schema with type "array"
	KindArray
	// KindReference is a schema that is a $ref to a reusable schema
	KindReference
)

var kindToString = map[SchemaKind]string{
	KindInvalid:   "invalid",
	KindScalar:    "scalar",
	KindObject:    "object",
	KindArray:     "array",
	KindReference: "reference",
}

func (k SchemaKind) String() string {
	if s, ok := kindToString[k]; ok {
		return s
	}
	return "invalid"
}

// IsValid returns true if this is a usable schema kind
func (k SchemaKind) IsValid() bool {
	return k > KindInvalid && k <= KindReference
}

// Schema represents one node of the descriptor's schema graph.
//
// The model is a tagged variant over four kinds (see SchemaKind): a $ref
// makes the schema a reference regardless of any other fields; otherwise the
// literal type keyword selects object, array, or scalar. Fields that do not
// belong to a schema's kind are simply nil/empty — consumers must switch on
// Kind() rather than reading fields blindly.
type Schema struct {
	// Ref is the $ref target; non-empty Ref makes the schema a reference.
	// Only the final '/'-separated segment is ever resolved (see RefName).
	Ref string
	// Type is the literal type keyword: "object", "array", or a scalar
	// keyword. May be empty when the source omitted it.
	Type        string
	Description string
	Format      string
	// Properties holds an object schema's property declarations in source
	// order. nil when the source omitted "properties" entirely; an empty
	// (non-nil) map when "properties" was declared with no entries. The
	// distinction matters: interface generation skips the former and emits a
	// zero-field interface for the latter.
	Properties *sequencedmap.Map[string, *Schema]
	// Required lists the property names that are non-optional; a property
	// absent from this list is optional
	Required []string
	// Items is an array schema's element schema; nil when omitted
	Items *Schema
	// Enum carries declared enumeration values, if any
	Enum []any
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any
}

// Kind returns the schema's variant. A nil schema is KindInvalid; a non-empty
// $ref always wins; otherwise the type keyword decides, with every
// unrecognized or absent keyword treated as scalar.
func (s *Schema) Kind() SchemaKind {
	switch {
	case s == nil:
		return KindInvalid
	case s.Ref != "":
		return KindReference
	case s.Type == "object":
		return KindObject
	case s.Type == "array":
		return KindArray
	default:
		return KindScalar
	}
}

// RefName returns the final '/'-separated segment of the $ref target, which
// is the referenced reusable schema's name (e.g.,
// "#/components/schemas/User" yields "User"). Returns "" for non-reference
// schemas.
func (s *Schema) RefName() string {
	if s == nil || s.Ref == "" {
		return ""
	}
	parts := strings.Split(s.Ref, "/")
	return parts[len(parts)-1]
}

// IsRequired reports whether the named property appears in the schema's
// required list. Safe to call on a nil Schema.
func (s *Schema) IsRequired(name string) bool {
	if s == nil {
		return false
	}
	return slices.Contains(s.Required, name)
}
