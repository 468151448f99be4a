package aggregate

import (
	"sort"

	"github.com/campusops/resdash/internal/model"
)

// WeekdayOrder fixes the day-of-week chart order.
var WeekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// HourCount is one bar of the start-hour histogram.
type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// timedOnly reports whether a record belongs in the time-demand charts:
// all-day reservations have no meaningful start hour.
func timedOnly(rec model.Record) bool {
	return !rec.AllDay
}

// HourHistogram counts reservations per start hour, ascending. All-day
// records and records without a parsed start time contribute nothing.
func HourHistogram(records []model.Record) []HourCount {
	counts := make(map[int]int)
	for _, rec := range records {
		if !timedOnly(rec) || rec.StartHour == nil {
			continue
		}
		counts[*rec.StartHour]++
	}
	out := make([]HourCount, 0, len(counts))
	for h, c := range counts {
		out = append(out, HourCount{Hour: h, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hour < out[j].Hour })
	return out
}

// DayOfWeekCounts counts reservations per weekday, reindexed Monday→Sunday.
// Days with no reservations are omitted rather than reported as zero, and
// all-day records are excluded as in the hour histogram.
func DayOfWeekCounts(records []model.Record) []CategoryCount {
	counts := make(map[string]int)
	for _, rec := range records {
		if !timedOnly(rec) || rec.DayOfWeek == "" {
			continue
		}
		counts[rec.DayOfWeek]++
	}
	var out []CategoryCount
	for _, day := range WeekdayOrder {
		if c := counts[day]; c > 0 {
			out = append(out, CategoryCount{Value: day, Count: c})
		}
	}
	return out
}
