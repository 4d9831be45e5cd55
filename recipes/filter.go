package recipes

import (
	"slices"
	"sort"
	"strings"

	"cocina/models"
	"cocina/utils"
)

// AllCategories is the filter value that matches every recipe.
const AllCategories = "All"

// Filter returns the recipes whose title contains searchQuery
// (case-insensitive) and whose normalized categories include
// selectedCategory. Both predicates are ANDed; an empty query or the "All"
// category match everything.
//
// The result is always sorted alphabetically by title, case-insensitively.
// Mongo stops guaranteeing a useful order once both predicates are applied
// in memory, so ordering is normalized here instead of relying on the
// cursor. An empty result is a valid outcome, not an error.
func Filter(list []models.Recipe, searchQuery, selectedCategory string) []models.Recipe {
	var out []models.Recipe
	for _, r := range list {
		if searchQuery != "" && !utils.ContainsIgnoreCase(r.Title, searchQuery) {
			continue
		}
		if selectedCategory != "" && selectedCategory != AllCategories &&
			!slices.Contains(r.Categories, selectedCategory) {
			continue
		}
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
	})
	return out
}
