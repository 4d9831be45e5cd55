package recipes

import (
	"reflect"
	"testing"
)

func TestSanitizeAllergensDropsUnknownIDs(t *testing.T) {
	got := SanitizeAllergens([]string{"milk", "gluten", "peanuts", "MSG"})
	if !reflect.DeepEqual(got, []string{"milk", "peanuts"}) {
		t.Fatalf("got %v", got)
	}
}

func TestSanitizeAllergensPreservesOrder(t *testing.T) {
	got := SanitizeAllergens([]string{"sesame", "milk", "eggs"})
	if !reflect.DeepEqual(got, []string{"sesame", "milk", "eggs"}) {
		t.Fatalf("got %v", got)
	}
}
