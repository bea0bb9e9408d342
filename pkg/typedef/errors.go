package typedef

import (
	"fmt"
	"strings"
)

// StructureError reports a type definition that is not shaped as a
// mapping with a "fields" key.
type StructureError struct {
	// TypeName is the record type whose definition is mis-shaped.
	TypeName string

	// Reason describes what was wrong with the definition.
	Reason string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("record type %q: %s", e.TypeName, e.Reason)
}

// UnknownTypeError reports a field whose declared type is outside the
// supported vocabulary. The message enumerates every supported type name
// so callers (including LLMs authoring config) can self-correct.
type UnknownTypeError struct {
	// TypeName is the record type that owns the field.
	TypeName string

	// Field is the offending field name.
	Field string

	// FieldType is the unsupported declared type.
	FieldType string

	// Supported lists every recognized type name.
	Supported []string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unsupported field type %q for field %q in type %q, supported types: %s",
		e.FieldType, e.Field, e.TypeName, strings.Join(e.Supported, ", "))
}

// ConstructionError wraps an unexpected failure while materializing a
// record type, such as an invalid type or field identifier.
type ConstructionError struct {
	// TypeName is the record type that failed to materialize.
	TypeName string

	// Err is the underlying error.
	Err error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("failed to create record type %q: %v", e.TypeName, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConstructionError) Unwrap() error { return e.Err }

// MissingFieldError reports a required field with no value at record
// construction time. Every declared field is required.
type MissingFieldError struct {
	// TypeName is the record type being instantiated.
	TypeName string

	// Field is the missing field name.
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("record type %q: missing required field %q", e.TypeName, e.Field)
}

// FieldValueError reports a field value that does not conform to the
// declared field type.
type FieldValueError struct {
	// TypeName is the record type being instantiated.
	TypeName string

	// Field is the offending field name.
	Field string

	// Want is the declared field type.
	Want FieldType

	// Got is the rejected value.
	Got any
}

func (e *FieldValueError) Error() string {
	return fmt.Sprintf("record type %q: field %q requires %s, got %T",
		e.TypeName, e.Field, e.Want, e.Got)
}
