package shaping

import (
	"errors"
	"testing"
)

type course struct {
	ID           int
	Title        string
	MainCategory string
	Credits      int
}

var courseFields = MustAccessors(
	Field[course]{Name: "id", Get: func(c course) any { return c.ID }},
	Field[course]{Name: "title", Get: func(c course) any { return c.Title }},
	Field[course]{Name: "mainCategory", Get: func(c course) any { return c.MainCategory }},
	Field[course]{Name: "credits", Get: func(c course) any { return c.Credits }},
)

var sample = course{ID: 7, Title: "Ada", MainCategory: "Math", Credits: 3}

func assertKeys(t *testing.T, obj *Object, expected ...string) {
	t.Helper()
	keys := obj.Keys()
	if len(keys) != len(expected) {
		t.Fatalf("expected keys %v, got %v", expected, keys)
	}
	for i := range expected {
		if keys[i] != expected[i] {
			t.Errorf("key %d: expected %q, got %q", i, expected[i], keys[i])
		}
	}
}

func TestShapeAllFieldsInDeclarationOrder(t *testing.T) {
	obj, err := courseFields.Shape(sample, "  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertKeys(t, obj, "id", "title", "mainCategory", "credits")
}

func TestShapeRequestedOrder(t *testing.T) {
	obj, err := courseFields.Shape(sample, "Id,MainCategory")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertKeys(t, obj, "id", "mainCategory")

	obj, err = courseFields.Shape(sample, " credits , ID ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertKeys(t, obj, "credits", "id")
}

func TestShapeSingleField(t *testing.T) {
	obj, err := courseFields.Shape(sample, "id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertKeys(t, obj, "id")

	value, ok := obj.Get("id")
	if !ok || value != 7 {
		t.Fatalf("expected id 7, got %v", value)
	}
}

func TestShapeDuplicateFieldKeepsOneKey(t *testing.T) {
	obj, err := courseFields.Shape(sample, "title,id,TITLE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertKeys(t, obj, "title", "id")
}

func TestShapeUnknownField(t *testing.T) {
	_, err := courseFields.Shape(sample, "id,author")

	var unknown *UnknownFieldError
	if !errors.As(err, &unknown) || unknown.Field != "author" {
		t.Fatalf("expected UnknownFieldError for author, got %v", err)
	}
}

func TestShapeAllIsAllOrNothing(t *testing.T) {
	items := []course{sample, {ID: 8, Title: "Grace"}}

	shaped, err := courseFields.ShapeAll(items, "title")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(shaped) != 2 {
		t.Fatalf("expected 2 shaped objects, got %d", len(shaped))
	}
	if v, _ := shaped[1].Get("title"); v != "Grace" {
		t.Fatalf("expected Grace, got %v", v)
	}

	if _, err := courseFields.ShapeAll(items, "nope"); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestHasFields(t *testing.T) {
	tests := []struct {
		fields string
		want   bool
	}{
		{"", true},
		{"id", true},
		{"ID, Title", true},
		{"title desc, credits asc", true},
		{"id,author", false},
		{"author,id", false},
	}

	for _, tt := range tests {
		if got := courseFields.HasFields(tt.fields); got != tt.want {
			t.Errorf("HasFields(%q) = %v, want %v", tt.fields, got, tt.want)
		}
	}
}

func TestNewAccessorsRejectsDuplicates(t *testing.T) {
	_, err := NewAccessors(
		Field[course]{Name: "id", Get: func(c course) any { return c.ID }},
		Field[course]{Name: "ID", Get: func(c course) any { return c.ID }},
	)
	if err == nil {
		t.Fatal("expected duplicate field error")
	}
}

func TestObjectMarshalKeepsOrder(t *testing.T) {
	obj, _ := courseFields.Shape(sample, "title,id")
	obj.Set("links", []string{"self"})

	data, err := obj.MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := `{"title":"Ada","id":7,"links":["self"]}`
	if string(data) != expected {
		t.Fatalf("expected %s, got %s", expected, data)
	}

	obj.Delete("id")
	obj.Delete("missing")
	obj.Set("title", "Lovelace")
	if obj.Len() != 2 {
		t.Fatalf("expected 2 keys after delete, got %v", obj.Keys())
	}
	data, _ = obj.MarshalJSON()
	if string(data) != `{"title":"Lovelace","links":["self"]}` {
		t.Fatalf("unexpected JSON after mutation: %s", data)
	}
}
