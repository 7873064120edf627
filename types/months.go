package types

import (
	"strconv"
	"strings"
)

// Three-letter month names the model sometimes emits instead of numbers.
var monthLookup = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthNumber resolves a month value to its number 1-12, accepting either a
// canonical 3-letter name or an integer string. ok is false when the value
// resolves to nothing, including integers outside 1-12.
func MonthNumber(s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, ok := monthLookup[s]; ok {
		return n, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 12 {
		return 0, false
	}
	return n, true
}

// MonthName maps a month number 1-12 to its full English name.
func MonthName(n int) (string, bool) {
	if n < 1 || n > len(monthNames) {
		return "", false
	}
	return monthNames[n-1], true
}
