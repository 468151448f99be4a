package normalize

import (
	"strings"
	"time"
)

// Date formats seen in reservation exports, month-first variants first.
var dateFormats = []string{
	"1/2/2006",
	"01/02/2006",
	"2006-01-02",
	"1-2-2006",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
}

// Day-first variants tried first when the source uses D/M/Y ordering.
var dayFirstFormats = []string{
	"2/1/2006",
	"02/01/2006",
	"2-1-2006",
}

// ParseDate attempts to parse a calendar date in multiple common formats,
// returning it at UTC midnight. Returns nil if the input is empty or
// unparseable. When dayFirst is set, D/M/Y slash dates take precedence over
// the export's usual M/D/Y.
func ParseDate(s string, dayFirst bool) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	formats := dateFormats
	if dayFirst {
		formats = append(dayFirstFormats, dateFormats...)
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &d
		}
	}
	return nil
}

// DayName returns the full weekday name for a date, or "" for nil.
func DayName(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Weekday().String()
}
