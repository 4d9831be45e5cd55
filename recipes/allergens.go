package recipes

import "slices"

// AllergenList is the fixed set of recognized allergen identifiers.
var AllergenList = []string{
	"milk",
	"eggs",
	"fish",
	"shellfish",
	"tree-nuts",
	"peanuts",
	"wheat",
	"soy",
	"sesame",
}

// SanitizeAllergens keeps only recognized allergen ids, preserving input
// order. Unknown ids are dropped silently.
func SanitizeAllergens(ids []string) []string {
	var out []string
	for _, id := range ids {
		if slices.Contains(AllergenList, id) {
			out = append(out, id)
		}
	}
	return out
}
