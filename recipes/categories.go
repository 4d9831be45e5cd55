package recipes

import "slices"

// ToggleCategory adds cat to the selection if absent and removes it if
// present. Removal of the sole remaining category is a silent no-op: a
// recipe always keeps at least one category.
func ToggleCategory(selected []string, cat string) []string {
	idx := slices.Index(selected, cat)
	if idx == -1 {
		return append(slices.Clone(selected), cat)
	}
	if len(selected) == 1 {
		return slices.Clone(selected)
	}
	return slices.Delete(slices.Clone(selected), idx, idx+1)
}
