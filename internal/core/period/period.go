// Package period converts YYYY-MM month strings into inclusive calendar
// date ranges and derives prior-year equivalents.
package period

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Month is a calendar month (year + month).
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses a YYYY-MM string. The month part must be 01-12.
func ParseMonth(s string) (Month, error) {
	if !monthPattern.MatchString(s) {
		return Month{}, fmt.Errorf("invalid month %q: expected YYYY-MM", s)
	}
	parts := strings.SplitN(s, "-", 2)
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	mon, err := strconv.Atoi(parts[1])
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	if mon < 1 || mon > 12 {
		return Month{}, fmt.Errorf("invalid month %q: month out of range", s)
	}
	return Month{Year: year, Month: time.Month(mon)}, nil
}

// String formats the month back as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// After reports whether m is chronologically after o.
func (m Month) After(o Month) bool {
	if m.Year != o.Year {
		return m.Year > o.Year
	}
	return m.Month > o.Month
}

// Range is an inclusive calendar date range.
type Range struct {
	From time.Time
	To   time.Time
}

// NewRange builds the range from the first day of start to the last day
// of end. Reversed ranges (start after end) are rejected.
func NewRange(start, end Month) (Range, error) {
	if start.After(end) {
		return Range{}, fmt.Errorf("start month %s is after end month %s", start, end)
	}
	return Range{
		From: time.Date(start.Year, start.Month, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(end.Year, end.Month, lastDay(end.Year, end.Month), 0, 0, 0, 0, time.UTC),
	}, nil
}

// LastYear shifts both endpoints back exactly one calendar year.
// The end date lands on the last day of the shifted month, so a Feb 29
// endpoint becomes Feb 28 in a non-leap prior year.
func (r Range) LastYear() Range {
	fromYear, fromMonth := r.From.Year()-1, r.From.Month()
	toYear, toMonth := r.To.Year()-1, r.To.Month()
	return Range{
		From: time.Date(fromYear, fromMonth, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(toYear, toMonth, lastDay(toYear, toMonth), 0, 0, 0, 0, time.UTC),
	}
}

// lastDay returns the number of days in the given month.
func lastDay(year int, m time.Month) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
