package recipes

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"cocina/utils"
)

var shelfLifeNumber = regexp.MustCompile(`\d+`)

var esWeekdays = [...]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"}
var esMonths = [...]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"}

// ExpiryDate turns a free-form shelf-life note ("5 days", "2 weeks",
// "1 month") into a formatted use-by date. The parser is a heuristic over
// free text, not a validated duration: the first decimal integer is the
// count, a "week" substring multiplies by 7, a "month" substring by 30 (a
// fixed approximation, not calendar math), anything else means days. Text
// with no number ("a few days") yields ok=false.
func ExpiryDate(shelfLife string, today time.Time, lang string) (string, bool) {
	match := shelfLifeNumber.FindString(shelfLife)
	if match == "" {
		return "", false
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return "", false
	}

	days := n
	switch {
	case utils.ContainsIgnoreCase(shelfLife, "week"):
		days = n * 7
	case utils.ContainsIgnoreCase(shelfLife, "month"):
		days = n * 30
	}

	return formatShortDate(today.AddDate(0, 0, days), lang), true
}

// formatShortDate renders the locale's short weekday/month/day convention:
// "Mon, Jan 15" for English, "lun, 15 ene" for Spanish.
func formatShortDate(d time.Time, lang string) string {
	if lang == "es" {
		return fmt.Sprintf("%s, %d %s", esWeekdays[d.Weekday()], d.Day(), esMonths[d.Month()-1])
	}
	return d.Format("Mon, Jan 2")
}
