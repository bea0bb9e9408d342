package typedef

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Definition declares one record type: field name to type name, plus an
// optional docstring attached to the built type for LLM guidance.
type Definition struct {
	Fields    *orderedmap.OrderedMap[string, string] `json:"fields"`
	Docstring string                                 `json:"docstring,omitempty"`
}

// CreateHook observes each record type as it is built. Used by callers
// to emit log events; the builder itself has no side effects.
type CreateHook func(name string, rec *RecordType)

// Builder validates declarations against the type table and constructs
// record types. The zero Builder is usable.
type Builder struct {
	hook CreateHook
}

// Option configures a Builder.
type Option func(*Builder)

// WithCreateHook registers fn to be called once per built record type,
// in declaration order.
func WithCreateHook(fn CreateHook) Option {
	return func(b *Builder) { b.hook = fn }
}

// NewBuilder returns a Builder with the given options applied.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build constructs one RecordType per definition, keyed by declared
// name. Definitions are processed in insertion order. Any invalid entry
// aborts the whole build:
//
//   - a definition without fields yields a StructureError
//   - a field type outside the supported vocabulary yields an
//     UnknownTypeError
//   - an invalid type or field identifier yields a ConstructionError
//
// Entity types and edge types share this routine; there is no
// structural difference between the two.
func (b *Builder) Build(defs *orderedmap.OrderedMap[string, Definition]) (map[string]*RecordType, error) {
	out := make(map[string]*RecordType, defs.Len())
	for entry := defs.Oldest(); entry != nil; entry = entry.Next() {
		name, def := entry.Key, entry.Value
		if def.Fields == nil {
			return nil, &StructureError{TypeName: name, Reason: `definition must have a "fields" key`}
		}
		fields := make([]Field, 0, def.Fields.Len())
		for f := def.Fields.Oldest(); f != nil; f = f.Next() {
			ft, ok := LookupType(f.Value)
			if !ok {
				return nil, &UnknownTypeError{
					TypeName:  name,
					Field:     f.Key,
					FieldType: f.Value,
					Supported: SupportedTypes(),
				}
			}
			fields = append(fields, Field{Name: f.Key, Type: ft})
		}
		rec, err := newRecordType(name, fields, def.Docstring)
		if err != nil {
			return nil, &ConstructionError{TypeName: name, Err: err}
		}
		out[name] = rec
		if b.hook != nil {
			b.hook(name, rec)
		}
	}
	return out, nil
}

// Build is shorthand for NewBuilder().Build(defs).
func Build(defs *orderedmap.OrderedMap[string, Definition]) (map[string]*RecordType, error) {
	return NewBuilder().Build(defs)
}
