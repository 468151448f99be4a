package normalize

import (
	"strings"
	"time"

	"github.com/campusops/resdash/internal/model"
)

// Options controls normalization behavior.
type Options struct {
	// DayFirst prefers D/M/Y over M/D/Y for ambiguous slash dates.
	DayFirst bool
}

// Stats counts per-field parse failures across one batch. A failure degrades
// the field to nil; it never rejects the record.
type Stats struct {
	DateFailures int64
	TimeFailures int64
}

// Apply converts one raw export row into a normalized Record. It is pure and
// total: every input produces exactly one output, with nil derived fields
// where raw values were absent or unparsable.
func Apply(raw model.RawRecord, opts Options) model.Record {
	rec := model.Record{Raw: raw}

	rec.EventDate = ParseDate(raw.EventDate, opts.DayFirst)
	rec.StartTime = ParseClock(raw.StartTime)
	rec.EndTime = ParseClock(raw.EndTime)

	if rec.StartTime != nil {
		h := rec.StartTime.Hour
		rec.StartHour = &h
	}
	rec.DayOfWeek = DayName(rec.EventDate)
	rec.AllDay = ParseFlag(raw.IsAllDayEvent)

	rec.StartInstant = CombineInstant(rec.EventDate, rec.StartTime)
	rec.EndInstant = CombineInstant(rec.EventDate, rec.EndTime)
	if rec.StartInstant != nil && rec.EndInstant != nil && rec.EndInstant.Before(*rec.StartInstant) {
		// End clock precedes start clock: reservation crosses midnight and
		// the export only records the end as a clock time.
		e := rec.EndInstant.AddDate(0, 0, 1)
		rec.EndInstant = &e
	}

	return rec
}

// Records normalizes a whole batch 1:1, tallying parse failures for fields
// that were present in the raw row but did not parse.
func Records(raws []model.RawRecord, opts Options) ([]model.Record, Stats) {
	out := make([]model.Record, len(raws))
	var st Stats
	for i, raw := range raws {
		out[i] = Apply(raw, opts)
		if strings.TrimSpace(raw.EventDate) != "" && out[i].EventDate == nil {
			st.DateFailures++
		}
		if strings.TrimSpace(raw.StartTime) != "" && out[i].StartTime == nil {
			st.TimeFailures++
		}
		if strings.TrimSpace(raw.EndTime) != "" && out[i].EndTime == nil {
			st.TimeFailures++
		}
	}
	return out, st
}

// CombineInstant merges a date with a clock into a single instant. Either
// part missing yields nil: a reservation without a parsed time gets no
// instant rather than a fabricated midnight one, so the timeline view only
// shows intervals the data actually asserts.
func CombineInstant(date *time.Time, c *model.Clock) *time.Time {
	if date == nil || c == nil {
		return nil
	}
	t := time.Date(date.Year(), date.Month(), date.Day(), c.Hour, c.Minute, 0, 0, time.UTC)
	return &t
}

// ParseFlag interprets the export's boolean columns leniently.
func ParseFlag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "yes", "y", "1":
		return true
	}
	return false
}
