package settings

import (
	"slices"
	"strings"
)

// DefaultCategories seeds the shared tag list when nothing is stored yet.
var DefaultCategories = []string{"Sauce", "Meat", "Side", "Dessert", "Prep"}

// AddTag appends newTag to the shared list after trimming whitespace.
// Empty input is a silent no-op. Duplicates are not rejected; the original
// tablet never did and RemoveTag removes all occurrences, so the pair
// stays consistent.
func AddTag(list []string, newTag string) []string {
	tag := strings.TrimSpace(newTag)
	if tag == "" {
		return slices.Clone(list)
	}
	return append(slices.Clone(list), tag)
}

// RemoveTag removes every occurrence of tag from the shared list. It does
// not cascade to recipes already carrying the tag: those keep it as an
// orphaned string, invisible in the filter bar but still on the document.
func RemoveTag(list []string, tag string) []string {
	out := make([]string, 0, len(list))
	for _, t := range list {
		if t != tag {
			out = append(out, t)
		}
	}
	return out
}
