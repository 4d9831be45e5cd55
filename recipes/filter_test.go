package recipes

import (
	"testing"

	"cocina/models"
)

func sampleRecipes() []models.Recipe {
	return NormalizeAll([]models.Recipe{
		{Title: "bbq Rub", Category: "Prep"},
		{Title: "Alabama White BBQ Sauce", Categories: []string{"Sauce"}},
		{Title: "Coleslaw", Categories: []string{"Side"}},
		{Title: "BBQ Glaze", Categories: []string{"Sauce", "Prep"}},
		{Title: "apple Pie", Category: "Dessert"},
	})
}

func titles(list []models.Recipe) []string {
	out := make([]string, len(list))
	for i, r := range list {
		out[i] = r.Title
	}
	return out
}

func TestFilterNoCriteriaReturnsAllSorted(t *testing.T) {
	got := titles(Filter(sampleRecipes(), "", AllCategories))
	want := []string{"Alabama White BBQ Sauce", "apple Pie", "BBQ Glaze", "bbq Rub", "Coleslaw"}

	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}

func TestFilterSearchAndCategoryAreANDed(t *testing.T) {
	got := Filter(sampleRecipes(), "bbq", "Sauce")

	if len(got) != 2 {
		t.Fatalf("expected 2 matching recipes, got %v", titles(got))
	}
	if got[0].Title != "Alabama White BBQ Sauce" || got[1].Title != "BBQ Glaze" {
		t.Fatalf("got %v", titles(got))
	}
}

func TestFilterSearchIsTitleOnly(t *testing.T) {
	recipesList := NormalizeAll([]models.Recipe{
		{Title: "Coleslaw", Category: "Side", IngredientsEn: "bbq sauce, cabbage"},
	})
	if got := Filter(recipesList, "bbq", AllCategories); len(got) != 0 {
		t.Fatalf("ingredients must not match search, got %v", titles(got))
	}
}

func TestFilterEmptyResultIsValid(t *testing.T) {
	got := Filter(sampleRecipes(), "sushi", AllCategories)
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", titles(got))
	}
}

func TestFilterMatchesAnyNormalizedCategory(t *testing.T) {
	got := Filter(sampleRecipes(), "", "Prep")
	if len(got) != 2 {
		t.Fatalf("expected legacy-scalar and multi-tag recipes to match, got %v", titles(got))
	}
}
