package typedef

import "reflect"

// FieldType is one entry of the supported type vocabulary. The zero
// FieldType is invalid; obtain values through LookupType.
type FieldType struct {
	name   string
	goType reflect.Type
}

// Name returns the declared type name, e.g. "List[int]".
func (t FieldType) Name() string { return t.name }

// GoType returns the runtime type this entry denotes.
func (t FieldType) GoType() reflect.Type { return t.goType }

// IsZero reports whether t is the zero (invalid) FieldType.
func (t FieldType) IsZero() bool { return t.goType == nil }

func (t FieldType) String() string { return t.name }

// typeTable is the complete, closed vocabulary of field types. Extending
// it means adding a literal entry here; generic syntax is never parsed.
var typeTable = []FieldType{
	{"str", reflect.TypeOf("")},
	{"int", reflect.TypeOf(int(0))},
	{"float", reflect.TypeOf(float64(0))},
	{"bool", reflect.TypeOf(false)},
	{"list", reflect.TypeOf([]any{})},
	{"dict", reflect.TypeOf(map[string]any{})},
	{"List[str]", reflect.TypeOf([]string{})},
	{"List[int]", reflect.TypeOf([]int{})},
	{"List[float]", reflect.TypeOf([]float64{})},
	{"Dict[str, Any]", reflect.TypeOf(map[string]any{})},
	{"Dict[str, str]", reflect.TypeOf(map[string]string{})},
	{"Dict[str, int]", reflect.TypeOf(map[string]int{})},
}

var typesByName = func() map[string]FieldType {
	m := make(map[string]FieldType, len(typeTable))
	for _, t := range typeTable {
		m[t.name] = t
	}
	return m
}()

// LookupType returns the FieldType registered under name. Unknown names
// are rejected, never coerced or guessed.
func LookupType(name string) (FieldType, bool) {
	t, ok := typesByName[name]
	return t, ok
}

// SupportedTypes returns every recognized type name in table order.
func SupportedTypes() []string {
	names := make([]string, len(typeTable))
	for i, t := range typeTable {
		names[i] = t.name
	}
	return names
}

// Accepts reports whether v conforms to the field type. JSON-decoded
// numbers arrive as float64, so an integral float64 satisfies "int";
// no other conversion is applied.
func (t FieldType) Accepts(v any) bool {
	if v == nil {
		return false
	}
	switch t.name {
	case "str":
		_, ok := v.(string)
		return ok
	case "int":
		return isInt(v)
	case "float":
		return isFloat(v)
	case "bool":
		_, ok := v.(bool)
		return ok
	case "list":
		return reflect.ValueOf(v).Kind() == reflect.Slice
	case "dict", "Dict[str, Any]":
		rv := reflect.ValueOf(v)
		return rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String
	case "List[str]":
		return isTypedList(v, func(e any) bool { _, ok := e.(string); return ok })
	case "List[int]":
		return isTypedList(v, isInt)
	case "List[float]":
		return isTypedList(v, isFloat)
	case "Dict[str, str]":
		return isStringDict(v, func(e any) bool { _, ok := e.(string); return ok })
	case "Dict[str, int]":
		return isStringDict(v, isInt)
	}
	return false
}

func isInt(v any) bool {
	switch n := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float64:
		return n == float64(int64(n))
	case float32:
		return n == float32(int64(n))
	}
	return false
}

func isFloat(v any) bool {
	switch v.(type) {
	case float32, float64, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}

func isTypedList(v any, elem func(any) bool) bool {
	switch list := v.(type) {
	case []any:
		for _, e := range list {
			if !elem(e) {
				return false
			}
		}
		return true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return false
	}
	for i := 0; i < rv.Len(); i++ {
		if !elem(rv.Index(i).Interface()) {
			return false
		}
	}
	return true
}

func isStringDict(v any, elem func(any) bool) bool {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return false
	}
	iter := rv.MapRange()
	for iter.Next() {
		if !elem(iter.Value().Interface()) {
			return false
		}
	}
	return true
}
