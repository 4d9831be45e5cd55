package settings

import (
	"reflect"
	"testing"
)

func TestAddTagTrimsWhitespace(t *testing.T) {
	got := AddTag([]string{"Sauce"}, "  Smoked  ")
	if !reflect.DeepEqual(got, []string{"Sauce", "Smoked"}) {
		t.Fatalf("got %v", got)
	}
}

func TestAddTagRefusesBlankInput(t *testing.T) {
	got := AddTag([]string{"Sauce"}, "   ")
	if !reflect.DeepEqual(got, []string{"Sauce"}) {
		t.Fatalf("blank tag must be a no-op, got %v", got)
	}
}

func TestAddTagAllowsDuplicates(t *testing.T) {
	got := AddTag([]string{"Sauce"}, "Sauce")
	if !reflect.DeepEqual(got, []string{"Sauce", "Sauce"}) {
		t.Fatalf("duplicates are not rejected, got %v", got)
	}
}

func TestRemoveTagRemovesAllOccurrences(t *testing.T) {
	got := RemoveTag([]string{"Sauce", "Meat", "Sauce"}, "Sauce")
	if !reflect.DeepEqual(got, []string{"Meat"}) {
		t.Fatalf("got %v", got)
	}
}

func TestRemoveTagLeavesRecipesAlone(t *testing.T) {
	// Deleting a tag from the shared list never cascades: a recipe's own
	// category list keeps the now-orphaned tag.
	recipeCategories := []string{"Sauce", "Prep"}
	_ = RemoveTag([]string{"Sauce", "Meat"}, "Sauce")

	if !reflect.DeepEqual(recipeCategories, []string{"Sauce", "Prep"}) {
		t.Fatalf("recipe categories changed: %v", recipeCategories)
	}
}
