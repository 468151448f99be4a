package aggregate

import (
	"sort"
	"time"

	"github.com/campusops/resdash/internal/model"
)

// TimelineEntry is one bar of the single-day timeline view. Start and End
// are the combined instants, End already rollover-corrected, so an entry for
// a reservation crossing midnight extends past the day boundary.
type TimelineEntry struct {
	Title    string    `json:"title"`
	Location string    `json:"location"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

// DatesWithEvents returns the distinct event dates present, ascending.
func DatesWithEvents(records []model.Record) []time.Time {
	seen := make(map[time.Time]bool)
	var out []time.Time
	for _, rec := range records {
		if rec.EventDate == nil {
			continue
		}
		d := *rec.EventDate
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// SnapToNearestDay returns the member of dates closest to want by absolute
// day distance, and whether a substitution happened. When two candidates are
// equidistant the earlier date wins. ok is false when dates is empty.
func SnapToNearestDay(dates []time.Time, want time.Time) (best time.Time, snapped, ok bool) {
	if len(dates) == 0 {
		return time.Time{}, false, false
	}
	bestDist := -1
	for _, d := range dates {
		dist := int(d.Sub(want).Hours() / 24)
		if dist < 0 {
			dist = -dist
		}
		if bestDist < 0 || dist < bestDist || (dist == bestDist && d.Before(best)) {
			best, bestDist = d, dist
		}
	}
	return best, !best.Equal(want), true
}

// TimelineForDay returns the timeline entries for reservations starting on
// day, sorted by start then title. Records without both instants have no
// interval to draw and are skipped.
func TimelineForDay(records []model.Record, day time.Time) []TimelineEntry {
	var out []TimelineEntry
	for _, rec := range records {
		if rec.StartInstant == nil || rec.EndInstant == nil || rec.EventDate == nil {
			continue
		}
		if !rec.EventDate.Equal(day) {
			continue
		}
		out = append(out, TimelineEntry{
			Title:    rec.Raw.Title,
			Location: rec.Raw.Location,
			Start:    *rec.StartInstant,
			End:      *rec.EndInstant,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Start.Equal(out[j].Start) {
			return out[i].Start.Before(out[j].Start)
		}
		return out[i].Title < out[j].Title
	})
	return out
}
