// Package datetime provides date and time utility functions.
package datetime

import (
	"time"

	"loanledger/pkg/constants"
)

const (
	// DateLayout is the calendar-date format used throughout the application.
	DateLayout = constants.DateLayout
)

// MustParseDate parses a date string using DateLayout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseDate(dateStr string) time.Time {
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// AddMonths returns the date advanced by the given number of calendar months,
// preserving the day of month. When the day overflows the target month
// (e.g. Jan 31 + 1 month) it clamps to that month's last valid day instead of
// normalizing into the following month the way time.AddDate does.
func AddMonths(date time.Time, months int) time.Time {
	year, month, day := date.Date()
	target := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, date.Location())
	if last := DaysInMonth(target.Year(), target.Month()); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day,
		date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// SameDate reports whether two times fall on the same calendar date,
// ignoring the time of day.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
