package recipes

import (
	"reflect"
	"testing"

	"cocina/models"
)

func TestNormalizeModernList(t *testing.T) {
	r := Normalize(models.Recipe{
		Title:      "Brisket",
		Categories: []string{"Meat", "Prep"},
		Category:   "Side", // stale mirror loses
	})

	if !reflect.DeepEqual(r.Categories, []string{"Meat", "Prep"}) {
		t.Fatalf("expected categories kept as-is, got %v", r.Categories)
	}
	if r.Category != "Meat" {
		t.Fatalf("expected mirror refreshed to first element, got %q", r.Category)
	}
}

func TestNormalizeLegacyScalar(t *testing.T) {
	r := Normalize(models.Recipe{Title: "House BBQ Sauce", Category: "Sauce"})

	if !reflect.DeepEqual(r.Categories, []string{"Sauce"}) {
		t.Fatalf("expected scalar wrapped, got %v", r.Categories)
	}
	if r.Category != "Sauce" {
		t.Fatalf("mirror changed: %q", r.Category)
	}
}

func TestNormalizeNoCategoryFields(t *testing.T) {
	r := Normalize(models.Recipe{Title: "Mystery"})

	if r.Categories == nil || len(r.Categories) != 0 {
		t.Fatalf("expected empty non-nil sequence, got %v", r.Categories)
	}
}

func TestNormalizeIsTotal(t *testing.T) {
	// zero value in, zero-ish value out, never a panic
	r := Normalize(models.Recipe{})
	if len(r.Categories) != 0 || r.Title != "" {
		t.Fatalf("unexpected defaults: %+v", r)
	}
}
