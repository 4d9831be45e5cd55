package recipes

import "cocina/models"

// Normalize is the single entry point that reconciles the three category
// schema generations into the canonical shape. It is total: malformed or
// missing fields default instead of failing.
//
//   - generation 3 documents already carry a categories array; kept as-is
//   - generations 1 and 2 carry only the scalar category; wrapped
//   - anything else yields an empty list, which callers must default
//     before persisting
//
// The scalar category is refreshed as a mirror of the first element so
// older tablet builds keep working.
func Normalize(r models.Recipe) models.Recipe {
	switch {
	case len(r.Categories) > 0:
		// modern list wins even when the mirror disagrees
	case r.Category != "":
		r.Categories = []string{r.Category}
	default:
		r.Categories = []string{}
	}

	if len(r.Categories) > 0 {
		r.Category = r.Categories[0]
	}
	return r
}

// NormalizeAll maps Normalize over a stored batch.
func NormalizeAll(list []models.Recipe) []models.Recipe {
	out := make([]models.Recipe, len(list))
	for i, r := range list {
		out[i] = Normalize(r)
	}
	return out
}
