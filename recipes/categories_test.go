package recipes

import (
	"reflect"
	"testing"
)

func TestToggleCategoryAdds(t *testing.T) {
	got := ToggleCategory([]string{"Meat"}, "Side")
	if !reflect.DeepEqual(got, []string{"Meat", "Side"}) {
		t.Fatalf("got %v", got)
	}
}

func TestToggleCategoryRemoves(t *testing.T) {
	got := ToggleCategory([]string{"Meat", "Side"}, "Meat")
	if !reflect.DeepEqual(got, []string{"Side"}) {
		t.Fatalf("got %v", got)
	}
}

func TestToggleCategoryRefusesEmptyingSelection(t *testing.T) {
	got := ToggleCategory([]string{"Meat"}, "Meat")
	if !reflect.DeepEqual(got, []string{"Meat"}) {
		t.Fatalf("sole category must survive a toggle, got %v", got)
	}
}

func TestToggleCategoryDoesNotMutateInput(t *testing.T) {
	in := []string{"Meat", "Side"}
	_ = ToggleCategory(in, "Side")
	if !reflect.DeepEqual(in, []string{"Meat", "Side"}) {
		t.Fatalf("input mutated: %v", in)
	}
}
