package dashboard

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/campusops/resdash/internal/filter"
	"github.com/campusops/resdash/internal/model"
	"github.com/campusops/resdash/internal/normalize"
	"github.com/campusops/resdash/internal/reservations"
)

const header = "EventId,Title,Location,Department,EventDate,StartTime,EndTime," +
	"IsAllDayEvent,IsTimedEvent,EventType,ContactName,ContactEmail,ContactPhone," +
	"IsReOccurring,IsOnMultipleCalendars,Status,EventTypeName\n"

func loadFixture(t *testing.T, content string) *reservations.Dataset {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reservations.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	ds, err := reservations.Load(zerolog.Nop(), path, normalize.Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return ds
}

func fullFixture(t *testing.T) *reservations.Dataset {
	return loadFixture(t, header+
		"1,Chess,Library 201,Student Life,9/1/2025,9:00AM,10:00AM,False,True,Meeting,Ada,ada@example.edu,,False,False,Active,Meeting\n"+
		"2,Robotics,Union A,Engineering,9/3/2025,9:00AM,11:00AM,False,True,Meeting,Grace,grace@example.edu,,False,False,Active,Meeting\n"+
		"3,Night Lab,Science 14,Physics,9/3/2025,11:30PM,12:30AM,False,True,Lab,Lin,lin@example.edu,,False,False,Cancelled,Lab\n"+
		"4,Career Fair,Union A,Career Services,9/5/2025,,,True,False,Fair,Sam,sam@example.edu,,False,False,Active,Fair\n")
}

func TestRender_FullModel(t *testing.T) {
	ds := fullFixture(t)
	m := Render(ds, State{})

	if m.Totals.Reservations != 4 || m.Totals.UniqueLocations != 3 || m.Totals.Active != 3 {
		t.Errorf("totals = %+v", m.Totals)
	}
	if len(m.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", m.Warnings)
	}
	if len(m.LocationPie.Slices) != 3 || m.LocationPie.Note != "" {
		t.Errorf("location pie = %+v", m.LocationPie)
	}
	// Hour 9 has two timed reservations; the all-day fair contributes none.
	if len(m.HourHistogram.Bars) != 2 || m.HourHistogram.Bars[0].Hour != 9 || m.HourHistogram.Bars[0].Count != 2 {
		t.Errorf("hour histogram = %+v", m.HourHistogram)
	}
	// Monday then Wednesday; the all-day Friday fair is excluded.
	if len(m.DayOfWeek.Bars) != 2 || m.DayOfWeek.Bars[0].Value != "Monday" || m.DayOfWeek.Bars[1].Value != "Wednesday" {
		t.Errorf("day of week = %+v", m.DayOfWeek)
	}
	// Default timeline day is the first day with reservations.
	if m.Timeline.Day != "9/1/2025" || m.Timeline.Snapped || len(m.Timeline.Entries) != 1 {
		t.Errorf("timeline = %+v", m.Timeline)
	}
	if m.Detail.Columns[0] != model.ColEventDate || len(m.Detail.Rows) != 4 {
		t.Errorf("detail = %d cols, %d rows", len(m.Detail.Columns), len(m.Detail.Rows))
	}
}

func TestRender_TimelineSnap(t *testing.T) {
	ds := fullFixture(t)
	// 9/2 has no reservations; 9/1 and 9/3 both have; tie prefers earlier.
	want := normalize.ParseDate("9/2/2025", false)
	m := Render(ds, State{TimelineDay: want})

	if !m.Timeline.Snapped || m.Timeline.Day != "9/1/2025" {
		t.Fatalf("timeline = %+v", m.Timeline)
	}
	if !strings.Contains(m.Timeline.Note, "9/2/2025") || !strings.Contains(m.Timeline.Note, "9/1/2025") {
		t.Errorf("note should name both dates: %q", m.Timeline.Note)
	}
}

func TestRender_FilterPropagates(t *testing.T) {
	ds := fullFixture(t)
	m := Render(ds, State{Filter: filter.Params{Locations: []string{"Union A"}}})

	if m.Totals.Reservations != 2 {
		t.Errorf("totals = %+v", m.Totals)
	}
	if len(m.Detail.Rows) != 2 {
		t.Errorf("detail rows = %d", len(m.Detail.Rows))
	}
	for _, s := range m.LocationPie.Slices {
		if s.Value != "Union A" {
			t.Errorf("unexpected pie slice: %+v", s)
		}
	}
}

func TestRender_EmptyFilterResult(t *testing.T) {
	ds := fullFixture(t)
	m := Render(ds, State{Filter: filter.Params{Search: "nothing matches this"}})

	if m.Totals.Reservations != 0 {
		t.Errorf("totals = %+v", m.Totals)
	}
	if m.LocationPie.Note == "" || m.HourHistogram.Note == "" || m.Timeline.Note == "" {
		t.Error("empty views should carry the placeholder note")
	}
	if len(m.Detail.Rows) != 0 {
		t.Errorf("detail rows = %d", len(m.Detail.Rows))
	}
}

func TestRender_MissingColumnsPlaceholder(t *testing.T) {
	ds := loadFixture(t, "EventId,Title,EventDate\n1,Chess,9/1/2025\n")
	m := Render(ds, State{})

	if len(m.Warnings) == 0 {
		t.Fatal("expected missing-column warnings")
	}
	if m.LocationPie.Note != "no data for this view" || m.HourHistogram.Note == "" {
		t.Errorf("placeholders missing: %+v, %+v", m.LocationPie, m.HourHistogram)
	}
	// EventDate is present, so the day-of-week chart still renders.
	if len(m.DayOfWeek.Bars) != 1 || m.DayOfWeek.Bars[0].Value != "Monday" {
		t.Errorf("day of week = %+v", m.DayOfWeek)
	}
	// Detail only lists carried columns.
	if len(m.Detail.Columns) != 3 {
		t.Errorf("detail columns = %v", m.Detail.Columns)
	}
}

func TestRender_TopNFoldsOther(t *testing.T) {
	rows := header
	for i, loc := range []string{"A", "A", "A", "B", "B", "C", "D"} {
		rows += string(rune('1'+i)) + ",t," + loc + ",,9/1/2025,9:00AM,10:00AM,False,True,,,,,,,Active,\n"
	}
	ds := loadFixture(t, rows)
	m := Render(ds, State{TopN: 2})

	slices := m.LocationPie.Slices
	if len(slices) != 3 || slices[2].Value != "Other" || slices[2].Count != 2 {
		t.Errorf("pie slices = %+v", slices)
	}
}
