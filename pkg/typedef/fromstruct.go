package typedef

import (
	"reflect"
	"sort"
	"strings"
)

// FromStructs converts Go struct prototypes into record types. This is
// the bridge from the native declaration form used by knowledge graph
// clients, where custom entity types are declared as struct values with
// `json` and `description` tags:
//
//	prototypes := map[string]any{
//		"Preference": struct {
//			Category    string `json:"category" description:"The category of the preference."`
//			Description string `json:"description" description:"Brief description of the preference."`
//		}{},
//	}
//
// Field names come from the `json` tag when present, struct field types
// must map onto the supported vocabulary, and `description` tags become
// field descriptions. Prototype names are processed in sorted order.
func (b *Builder) FromStructs(prototypes map[string]any) (map[string]*RecordType, error) {
	names := make([]string, 0, len(prototypes))
	for name := range prototypes {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]*RecordType, len(prototypes))
	for _, name := range names {
		rt := reflect.TypeOf(prototypes[name])
		for rt != nil && rt.Kind() == reflect.Pointer {
			rt = rt.Elem()
		}
		if rt == nil || rt.Kind() != reflect.Struct {
			return nil, &StructureError{TypeName: name, Reason: "prototype must be a struct"}
		}
		fields, err := structFields(name, rt)
		if err != nil {
			return nil, err
		}
		rec, err := newRecordType(name, fields, "")
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

// FromStructs is shorthand for NewBuilder().FromStructs(prototypes).
func FromStructs(prototypes map[string]any) (map[string]*RecordType, error) {
	return NewBuilder().FromStructs(prototypes)
}

func structFields(typeName string, rt reflect.Type) ([]Field, error) {
	fields := make([]Field, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := sf.Name
		if tag, ok := sf.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		mapped, ok := typeNameForGo(sf.Type)
		if !ok {
			return nil, &UnknownTypeError{
				TypeName:  typeName,
				Field:     name,
				FieldType: sf.Type.String(),
				Supported: SupportedTypes(),
			}
		}
		ft, _ := LookupType(mapped)
		fields = append(fields, Field{
			Name:        name,
			Type:        ft,
			Description: sf.Tag.Get("description"),
		})
	}
	return fields, nil
}

// typeNameForGo maps a Go type onto the supported vocabulary.
func typeNameForGo(t reflect.Type) (string, bool) {
	switch t.Kind() {
	case reflect.String:
		return "str", true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "int", true
	case reflect.Float32, reflect.Float64:
		return "float", true
	case reflect.Bool:
		return "bool", true
	case reflect.Slice:
		switch t.Elem().Kind() {
		case reflect.String:
			return "List[str]", true
		case reflect.Int, reflect.Int64:
			return "List[int]", true
		case reflect.Float32, reflect.Float64:
			return "List[float]", true
		case reflect.Interface:
			return "list", true
		}
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return "", false
		}
		switch t.Elem().Kind() {
		case reflect.String:
			return "Dict[str, str]", true
		case reflect.Int, reflect.Int64:
			return "Dict[str, int]", true
		case reflect.Interface:
			return "Dict[str, Any]", true
		}
	}
	return "", false
}
