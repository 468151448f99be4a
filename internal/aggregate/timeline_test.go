package aggregate

import (
	"testing"
	"time"

	"github.com/campusops/resdash/internal/model"
	"github.com/campusops/resdash/internal/normalize"
)

func day(s string) time.Time {
	return *normalize.ParseDate(s, false)
}

func tl(id, title, date, start, end string) model.Record {
	return normalize.Apply(model.RawRecord{
		EventID: id, Title: title, EventDate: date, StartTime: start, EndTime: end,
	}, normalize.Options{})
}

func TestDatesWithEvents(t *testing.T) {
	records := []model.Record{
		tl("1", "a", "9/5/2025", "9:00AM", "10:00AM"),
		tl("2", "b", "9/3/2025", "9:00AM", "10:00AM"),
		tl("3", "c", "9/5/2025", "1:00PM", "2:00PM"),
		tl("4", "d", "", "", ""),
	}
	got := DatesWithEvents(records)
	if len(got) != 2 || !got[0].Equal(day("9/3/2025")) || !got[1].Equal(day("9/5/2025")) {
		t.Fatalf("DatesWithEvents = %v", got)
	}
}

func TestSnapToNearestDay(t *testing.T) {
	dates := []time.Time{day("9/3/2025"), day("9/10/2025")}

	// Exact hit: no substitution.
	got, snapped, ok := SnapToNearestDay(dates, day("9/3/2025"))
	if !ok || snapped || !got.Equal(day("9/3/2025")) {
		t.Errorf("exact hit: got=%v snapped=%v ok=%v", got, snapped, ok)
	}

	// 9/5 is 2 days from 9/3 and 5 days from 9/10.
	got, snapped, ok = SnapToNearestDay(dates, day("9/5/2025"))
	if !ok || !snapped || !got.Equal(day("9/3/2025")) {
		t.Errorf("nearest: got=%v snapped=%v", got, snapped)
	}

	// Equidistant candidates resolve to the earlier date.
	dates = []time.Time{day("9/4/2025"), day("9/8/2025")}
	got, snapped, _ = SnapToNearestDay(dates, day("9/6/2025"))
	if !snapped || !got.Equal(day("9/4/2025")) {
		t.Errorf("tie should prefer earlier date, got %v", got)
	}

	if _, _, ok := SnapToNearestDay(nil, day("9/6/2025")); ok {
		t.Error("empty candidate set should report ok=false")
	}
}

func TestTimelineForDay(t *testing.T) {
	records := []model.Record{
		tl("1", "Late Lab", "9/3/2025", "11:30PM", "12:30AM"),
		tl("2", "Morning Yoga", "9/3/2025", "7:00AM", "8:00AM"),
		tl("3", "Other Day", "9/4/2025", "9:00AM", "10:00AM"),
		tl("4", "No Times", "9/3/2025", "", ""),
		tl("5", "Anatomy", "9/3/2025", "7:00AM", "9:00AM"),
	}

	got := TimelineForDay(records, day("9/3/2025"))
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %v", got)
	}
	// Sorted by start, ties by title.
	if got[0].Title != "Anatomy" || got[1].Title != "Morning Yoga" || got[2].Title != "Late Lab" {
		t.Errorf("order wrong: %v, %v, %v", got[0].Title, got[1].Title, got[2].Title)
	}
	// The midnight-crossing entry extends into the next day.
	if !got[2].End.After(day("9/4/2025")) {
		t.Errorf("rollover entry should end past midnight: %v", got[2].End)
	}

	if got := TimelineForDay(records, day("9/9/2025")); len(got) != 0 {
		t.Errorf("expected no entries, got %v", got)
	}
}
