package recipes

import (
	"testing"
	"time"
)

func TestExpiryDateWeeks(t *testing.T) {
	today := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	got, ok := ExpiryDate("2 weeks", today, "en")
	if !ok {
		t.Fatal("expected a result")
	}
	if got != "Mon, Jan 15" {
		t.Fatalf("got %q", got)
	}
}

func TestExpiryDateDays(t *testing.T) {
	today := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	got, ok := ExpiryDate("5 days", today, "en")
	if !ok || got != "Sat, Jan 6" {
		t.Fatalf("got %q ok=%v", got, ok)
	}
}

func TestExpiryDateMonthsUseFixedApproximation(t *testing.T) {
	today := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// 2 months is 60 days, not calendar months
	got, ok := ExpiryDate("2 months", today, "en")
	if !ok || got != "Fri, Mar 1" {
		t.Fatalf("got %q ok=%v", got, ok)
	}
}

func TestExpiryDateNoNumber(t *testing.T) {
	if _, ok := ExpiryDate("a few days", time.Now(), "en"); ok {
		t.Fatal("expected no result for text without a number")
	}
	if _, ok := ExpiryDate("", time.Now(), "en"); ok {
		t.Fatal("expected no result for empty text")
	}
}

func TestExpiryDateCaseInsensitiveUnits(t *testing.T) {
	today := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	got, ok := ExpiryDate("1 Week", today, "en")
	if !ok || got != "Mon, Jan 8" {
		t.Fatalf("got %q ok=%v", got, ok)
	}
}

func TestExpiryDateSpanishFormat(t *testing.T) {
	today := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	got, ok := ExpiryDate("2 weeks", today, "es")
	if !ok || got != "lun, 15 ene" {
		t.Fatalf("got %q ok=%v", got, ok)
	}
}
