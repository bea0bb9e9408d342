package typedef

import (
	"fmt"
	"regexp"
	"strings"
)

// Field is one declared field of a RecordType.
type Field struct {
	// Name of the field.
	Name string

	// Type is the declared field type from the supported vocabulary.
	Type FieldType

	// Description optionally documents the field for LLM prompt guidance.
	// Populated by FromStructs from `description` struct tags; field
	// declarations arriving as name/type mappings leave it empty.
	Description string
}

// RecordType is a runtime-built record definition: an ordered list of
// required fields plus an optional docstring. RecordTypes are immutable
// after creation.
type RecordType struct {
	name   string
	fields []Field
	doc    string
}

var identifierRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// newRecordType materializes a record type, validating identifiers.
func newRecordType(name string, fields []Field, doc string) (*RecordType, error) {
	if !identifierRE.MatchString(name) {
		return nil, fmt.Errorf("%q is not a valid type name", name)
	}
	for _, f := range fields {
		if !identifierRE.MatchString(f.Name) {
			return nil, fmt.Errorf("%q is not a valid field name", f.Name)
		}
	}
	return &RecordType{name: name, fields: fields, doc: doc}, nil
}

// Name returns the declared type name.
func (r *RecordType) Name() string { return r.name }

// Doc returns the docstring attached to the type, or "".
func (r *RecordType) Doc() string { return r.doc }

// NumFields returns the number of declared fields.
func (r *RecordType) NumFields() int { return len(r.fields) }

// Fields returns the declared fields in declaration order.
func (r *RecordType) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Field returns the declaration for name.
func (r *RecordType) Field(name string) (Field, bool) {
	for _, f := range r.fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// String renders the type as "Name(field: type, ...)".
func (r *RecordType) String() string {
	var b strings.Builder
	b.WriteString(r.name)
	b.WriteByte('(')
	for i, f := range r.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(f.Type.Name())
	}
	b.WriteByte(')')
	return b.String()
}

// Record is a validated instance of a RecordType.
type Record map[string]any

// Instantiate checks values against the field declarations and returns a
// record holding the declared fields. Every declared field is required;
// keys not declared on the type are dropped.
func (r *RecordType) Instantiate(values map[string]any) (Record, error) {
	rec := make(Record, len(r.fields))
	for _, f := range r.fields {
		v, ok := values[f.Name]
		if !ok {
			return nil, &MissingFieldError{TypeName: r.name, Field: f.Name}
		}
		if !f.Type.Accepts(v) {
			return nil, &FieldValueError{TypeName: r.name, Field: f.Name, Want: f.Type, Got: v}
		}
		rec[f.Name] = v
	}
	return rec, nil
}
