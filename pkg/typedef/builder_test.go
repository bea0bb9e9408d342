package typedef

import (
	"errors"
	"strings"
	"testing"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

func singleFieldDefs(typeName, fieldName, fieldType string) *orderedmap.OrderedMap[string, Definition] {
	fields := orderedmap.New[string, string]()
	fields.Set(fieldName, fieldType)
	defs := orderedmap.New[string, Definition]()
	defs.Set(typeName, Definition{Fields: fields})
	return defs
}

func TestBuildSupportedTypes(t *testing.T) {
	for _, name := range SupportedTypes() {
		t.Run(name, func(t *testing.T) {
			recs, err := Build(singleFieldDefs("Sample", "value", name))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			field, ok := recs["Sample"].Field("value")
			if !ok {
				t.Fatal("field 'value' not found")
			}
			want, _ := LookupType(name)
			if field.Type.GoType() != want.GoType() {
				t.Errorf("field type = %v, want %v", field.Type.GoType(), want.GoType())
			}
		})
	}
}

func TestBuildUnknownType(t *testing.T) {
	_, err := Build(singleFieldDefs("Sample", "value", "Set[str]"))
	var unknownErr *UnknownTypeError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownTypeError, got %v", err)
	}
	if unknownErr.TypeName != "Sample" || unknownErr.Field != "value" || unknownErr.FieldType != "Set[str]" {
		t.Errorf("unexpected error fields: %+v", unknownErr)
	}
	// The message must enumerate the full supported vocabulary.
	for _, name := range SupportedTypes() {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error message missing supported type %q: %s", name, err)
		}
	}
}

func TestBuildMissingFields(t *testing.T) {
	defs := orderedmap.New[string, Definition]()
	defs.Set("Person", Definition{Docstring: "no fields"})

	_, err := Build(defs)
	var structErr *StructureError
	if !errors.As(err, &structErr) {
		t.Fatalf("expected StructureError, got %v", err)
	}
	if structErr.TypeName != "Person" {
		t.Errorf("TypeName = %q, want %q", structErr.TypeName, "Person")
	}
}

func TestBuildDocstring(t *testing.T) {
	fields := orderedmap.New[string, string]()
	fields.Set("name", "str")
	fields.Set("age", "int")
	defs := orderedmap.New[string, Definition]()
	defs.Set("Person", Definition{Fields: fields, Docstring: "A person"})

	recs, err := Build(defs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	person := recs["Person"]
	if person.Doc() != "A person" {
		t.Errorf("Doc() = %q, want %q", person.Doc(), "A person")
	}
	if person.NumFields() != 2 {
		t.Fatalf("NumFields() = %d, want 2", person.NumFields())
	}
	got := person.Fields()
	if got[0].Name != "name" || got[0].Type.Name() != "str" {
		t.Errorf("field 0 = %s: %s, want name: str", got[0].Name, got[0].Type)
	}
	if got[1].Name != "age" || got[1].Type.Name() != "int" {
		t.Errorf("field 1 = %s: %s, want age: int", got[1].Name, got[1].Type)
	}
}

func TestBuildEmptyDefinitions(t *testing.T) {
	recs, err := Build(orderedmap.New[string, Definition]())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected empty result, got %d entries", len(recs))
	}
}

func TestBuildConstructionError(t *testing.T) {
	tests := []struct {
		name      string
		typeName  string
		fieldName string
	}{
		{name: "empty type name", typeName: "", fieldName: "value"},
		{name: "type name starting with digit", typeName: "9Lives", fieldName: "value"},
		{name: "field name with spaces", typeName: "Sample", fieldName: "a field"},
		{name: "empty field name", typeName: "Sample", fieldName: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(singleFieldDefs(tt.typeName, tt.fieldName, "str"))
			var consErr *ConstructionError
			if !errors.As(err, &consErr) {
				t.Fatalf("expected ConstructionError, got %v", err)
			}
			if consErr.TypeName != tt.typeName {
				t.Errorf("TypeName = %q, want %q", consErr.TypeName, tt.typeName)
			}
		})
	}
}

func TestCreateHookOrder(t *testing.T) {
	fields := orderedmap.New[string, string]()
	fields.Set("name", "str")
	defs := orderedmap.New[string, Definition]()
	defs.Set("Zebra", Definition{Fields: fields})
	defs.Set("Aardvark", Definition{Fields: fields})

	var seen []string
	b := NewBuilder(WithCreateHook(func(name string, rec *RecordType) {
		seen = append(seen, name)
	}))
	if _, err := b.Build(defs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seen) != 2 || seen[0] != "Zebra" || seen[1] != "Aardvark" {
		t.Errorf("hook order = %v, want [Zebra Aardvark]", seen)
	}
}

func TestBuildAbortsOnFirstError(t *testing.T) {
	fields := orderedmap.New[string, string]()
	fields.Set("name", "str")
	badFields := orderedmap.New[string, string]()
	badFields.Set("name", "tuple")
	defs := orderedmap.New[string, Definition]()
	defs.Set("Bad", Definition{Fields: badFields})
	defs.Set("Good", Definition{Fields: fields})

	recs, err := Build(defs)
	if err == nil {
		t.Fatal("expected error")
	}
	if recs != nil {
		t.Errorf("expected no partial result, got %v", recs)
	}
}
