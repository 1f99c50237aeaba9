package dateutil

import (
	"fmt"
	"time"
)

// MonthLayout is the label format used for forecast periods.
const MonthLayout = "2006-01"

// DateLayout is the calendar date format accepted on the command line.
const DateLayout = "2006-01-02"

// MonthStart returns midnight UTC on the first day of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// AddMonths moves n calendar months from the first day of t's month.
// Anchoring on day 1 avoids time.AddDate normalizing Jan 31 + 1 month into March.
func AddMonths(t time.Time, n int) time.Time {
	return MonthStart(t).AddDate(0, n, 0)
}

// MonthLabel formats t as YYYY-MM.
func MonthLabel(t time.Time) string {
	return t.Format(MonthLayout)
}

// ParseMonth parses a YYYY-MM label into the first day of that month.
func ParseMonth(label string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, label)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM: %w", label, err)
	}
	return t, nil
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}

// MonthsBetween counts whole calendar months from a's month to b's month.
func MonthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
