package menu

import (
	"strconv"
	"strings"
	"time"
)

// REFERENCE_YEAR is the fixed year used when validating date tokens that
// carry no year of their own. Leap year, so 29/fev is accepted.
const REFERENCE_YEAR = 2024

// monthsMap maps the menu's abbreviated pt-BR month tokens to months.
var monthsMap = map[string]time.Month{
	"jan": time.January,
	"fev": time.February,
	"mar": time.March,
	"abr": time.April,
	"mai": time.May,
	"jun": time.June,
	"jul": time.July,
	"ago": time.August,
	"set": time.September,
	"out": time.October,
	"nov": time.November,
	"dez": time.December,
}

// ParseDayMonth parses a "dd/mon" token against the given year. The month
// abbreviation is case-insensitive. Returns false for anything that is not
// a valid calendar date in that year.
func ParseDayMonth(token string, year int) (time.Time, bool) {
	parts := strings.Split(token, "/")
	if len(parts) != 2 {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || day < 1 {
		return time.Time{}, false
	}

	month, ok := monthsMap[strings.ToLower(strings.TrimSpace(parts[1]))]
	if !ok {
		return time.Time{}, false
	}

	date := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	if date.Month() != month || date.Day() != day {
		// time.Date normalizes overflows, e.g. 31/abr becomes 01/mai
		return time.Time{}, false
	}
	return date, true
}

// IsValidDate reports whether the token is a well-formed "dd/mon" date in
// the reference year.
func IsValidDate(token string) bool {
	_, ok := ParseDayMonth(token, REFERENCE_YEAR)
	return ok
}

// IsToday reports whether the token, re-parsed with the current year,
// denotes the given day.
func IsToday(token string, now time.Time) bool {
	date, ok := ParseDayMonth(token, now.Year())
	if !ok {
		return false
	}
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
