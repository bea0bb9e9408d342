package typedef

import (
	"errors"
	"testing"
)

func TestFromStructs(t *testing.T) {
	prototypes := map[string]any{
		"Preference": struct {
			Category    string `json:"category" description:"The category of the preference."`
			Description string `json:"description" description:"Brief description of the preference."`
		}{},
		"Requirement": struct {
			ProjectName string   `json:"project_name"`
			Tags        []string `json:"tags"`
			Priority    int      `json:"priority"`
			Metadata    map[string]any
		}{},
	}

	recs, err := FromStructs(prototypes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 record types, got %d", len(recs))
	}

	pref := recs["Preference"]
	field, ok := pref.Field("category")
	if !ok {
		t.Fatal("field 'category' not found")
	}
	if field.Type.Name() != "str" {
		t.Errorf("category type = %s, want str", field.Type)
	}
	if field.Description != "The category of the preference." {
		t.Errorf("category description = %q", field.Description)
	}

	req := recs["Requirement"]
	wantTypes := map[string]string{
		"project_name": "str",
		"tags":         "List[str]",
		"priority":     "int",
		"Metadata":     "Dict[str, Any]",
	}
	for name, want := range wantTypes {
		field, ok := req.Field(name)
		if !ok {
			t.Errorf("field %q not found", name)
			continue
		}
		if field.Type.Name() != want {
			t.Errorf("field %q type = %s, want %s", name, field.Type, want)
		}
	}
}

func TestFromStructsSkipsHiddenFields(t *testing.T) {
	recs, err := FromStructs(map[string]any{
		"Sample": struct {
			Visible string `json:"visible"`
			Ignored string `json:"-"`
			hidden  string
		}{},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := recs["Sample"].NumFields(); n != 1 {
		t.Errorf("NumFields() = %d, want 1", n)
	}
}

func TestFromStructsPointerPrototype(t *testing.T) {
	recs, err := FromStructs(map[string]any{
		"Sample": &struct {
			Name string `json:"name"`
		}{},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := recs["Sample"].Field("name"); !ok {
		t.Error("field 'name' not found")
	}
}

func TestFromStructsUnsupportedFieldType(t *testing.T) {
	_, err := FromStructs(map[string]any{
		"Sample": struct {
			Ch chan int `json:"ch"`
		}{},
	})
	var unknownErr *UnknownTypeError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownTypeError, got %v", err)
	}
	if unknownErr.TypeName != "Sample" || unknownErr.Field != "ch" {
		t.Errorf("unexpected error fields: %+v", unknownErr)
	}
}

func TestFromStructsNonStructPrototype(t *testing.T) {
	_, err := FromStructs(map[string]any{"Sample": "not a struct"})
	var structErr *StructureError
	if !errors.As(err, &structErr) {
		t.Fatalf("expected StructureError, got %v", err)
	}
	if structErr.TypeName != "Sample" {
		t.Errorf("TypeName = %q, want %q", structErr.TypeName, "Sample")
	}
}
