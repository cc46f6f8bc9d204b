package models

import "time"

// DateLayout is the calendar date layout used by the data source and exports.
const DateLayout = "2006-01-02"

// Date builds a calendar date at UTC midnight.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a calendar date.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.UTC)
}

// TruncateToDate drops the clock part of t, keeping its calendar day.
func TruncateToDate(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// DaysInMonth returns the number of days of the month t falls in.
func DaysInMonth(t time.Time) int {
	return Date(t.Year(), t.Month()+1, 0).Day()
}

// AddMonths moves t by n calendar months. The day is clamped to the last day
// of the target month, so Jan 31 + 1 month is Feb 28 (or 29).
func AddMonths(t time.Time, n int) time.Time {
	first := Date(t.Year(), t.Month(), 1).AddDate(0, n, 0)
	day := t.Day()
	if last := DaysInMonth(first); day > last {
		day = last
	}
	return Date(first.Year(), first.Month(), day)
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// DateRange bounds an invoice query; both ends are inclusive.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDateRange builds the lookback/lookahead window around today.
func NewDateRange(today time.Time, lookbackDays, lookaheadDays int) DateRange {
	day := TruncateToDate(today)
	return DateRange{
		Start: day.AddDate(0, 0, -lookbackDays),
		End:   day.AddDate(0, 0, lookaheadDays),
	}
}
