// Package dashboard assembles the render model the UI consumes. One call to
// Render is one user interaction: it filters, aggregates, and packages every
// view from scratch, with no state carried between calls.
package dashboard

import (
	"fmt"
	"time"

	"github.com/campusops/resdash/internal/aggregate"
	"github.com/campusops/resdash/internal/export"
	"github.com/campusops/resdash/internal/filter"
	"github.com/campusops/resdash/internal/model"
	"github.com/campusops/resdash/internal/reservations"
)

// noDataNote is the placeholder shown when a view has nothing to draw,
// whether from a missing source column or an empty filter result.
const noDataNote = "no data for this view"

// State is one dashboard interaction: the filter set, the requested timeline
// day (nil picks the first day with reservations), and the pie-chart bound.
type State struct {
	Filter      filter.Params
	TimelineDay *time.Time
	TopN        int
}

// PieView is a top-N-with-Other categorical distribution.
type PieView struct {
	Slices []aggregate.CategoryCount `json:"slices"`
	Note   string                    `json:"note,omitempty"`
}

// BarsView is an ordered bar chart.
type BarsView struct {
	Bars []aggregate.CategoryCount `json:"bars"`
	Note string                    `json:"note,omitempty"`
}

// HourView is the start-hour histogram.
type HourView struct {
	Bars []aggregate.HourCount `json:"bars"`
	Note string                `json:"note,omitempty"`
}

// PivotView is a cross-count table (stacked bars or heatmap).
type PivotView struct {
	Pivot aggregate.Pivot `json:"pivot"`
	Note  string          `json:"note,omitempty"`
}

// TimelineView is the single-day timeline. Snapped is set when the requested
// day had no reservations and a nearby day was substituted; Note says which.
type TimelineView struct {
	Day     string                    `json:"day,omitempty"`
	Snapped bool                      `json:"snapped,omitempty"`
	Entries []aggregate.TimelineEntry `json:"entries"`
	Note    string                    `json:"note,omitempty"`
}

// DetailView is the filtered record table, in preferred display order.
type DetailView struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// RenderModel is everything the UI needs for one full render.
type RenderModel struct {
	BatchID  string           `json:"batch_id"`
	Totals   aggregate.Totals `json:"totals"`
	Warnings []string         `json:"warnings,omitempty"`

	LocationPie    PieView   `json:"location_pie"`
	DepartmentPie  PieView   `json:"department_pie"`
	DeptByLocation PivotView `json:"dept_by_location"`

	HourHistogram  HourView  `json:"hour_histogram"`
	DayOfWeek      BarsView  `json:"day_of_week"`
	LocationByHour PivotView `json:"location_by_hour"`

	Timeline TimelineView `json:"timeline"`
	Detail   DetailView   `json:"detail"`
}

// Render computes the full render model for one interaction.
func Render(ds *reservations.Dataset, st State) RenderModel {
	topN := st.TopN
	if topN <= 0 {
		topN = 12
	}
	records := filter.Apply(ds.Records, st.Filter)

	m := RenderModel{
		BatchID: ds.Summary.BatchID,
		Totals:  aggregate.Summarize(records),
	}
	for _, col := range ds.MissingColumns() {
		m.Warnings = append(m.Warnings, fmt.Sprintf("column %s missing from export", col))
	}

	m.LocationPie = pie(ds, records, model.ColLocation, func(r model.Record) string { return r.Raw.Location }, topN)
	m.DepartmentPie = pie(ds, records, model.ColDepartment, func(r model.Record) string { return r.Raw.Department }, topN)

	if ds.HasColumn(model.ColLocation) && ds.HasColumn(model.ColDepartment) {
		m.DeptByLocation.Pivot = aggregate.LocationByDepartment(records)
	}
	if len(m.DeptByLocation.Pivot.Rows) == 0 {
		m.DeptByLocation.Note = noDataNote
	}

	if ds.HasColumn(model.ColStartTime) {
		m.HourHistogram.Bars = aggregate.HourHistogram(records)
	}
	if len(m.HourHistogram.Bars) == 0 {
		m.HourHistogram.Note = noDataNote
	}

	if ds.HasColumn(model.ColEventDate) {
		m.DayOfWeek.Bars = aggregate.DayOfWeekCounts(records)
	}
	if len(m.DayOfWeek.Bars) == 0 {
		m.DayOfWeek.Note = noDataNote
	}

	if ds.HasColumn(model.ColLocation) && ds.HasColumn(model.ColStartTime) {
		m.LocationByHour.Pivot = aggregate.LocationByHour(records)
	}
	if len(m.LocationByHour.Pivot.Rows) == 0 {
		m.LocationByHour.Note = noDataNote
	}

	m.Timeline = timeline(records, st.TimelineDay)
	m.Detail = detail(ds, records)
	return m
}

func pie(ds *reservations.Dataset, records []model.Record, col string, key func(model.Record) string, topN int) PieView {
	var v PieView
	if ds.HasColumn(col) {
		v.Slices = aggregate.TopNWithOther(aggregate.ValueCounts(records, key), topN)
	}
	if len(v.Slices) == 0 {
		v.Note = noDataNote
	}
	return v
}

func timeline(records []model.Record, requested *time.Time) TimelineView {
	dates := aggregate.DatesWithEvents(records)
	if len(dates) == 0 {
		return TimelineView{Note: noDataNote}
	}

	day := dates[0]
	snapped := false
	if requested != nil {
		day, snapped, _ = aggregate.SnapToNearestDay(dates, *requested)
	}

	v := TimelineView{
		Day:     fmtDay(day),
		Snapped: snapped,
		Entries: aggregate.TimelineForDay(records, day),
	}
	if snapped {
		v.Note = fmt.Sprintf("no reservations on %s; showing %s", fmtDay(*requested), fmtDay(day))
	}
	return v
}

func detail(ds *reservations.Dataset, records []model.Record) DetailView {
	cols := export.Columns(ds.HasColumn)
	rows := make([][]string, len(records))
	for i, rec := range records {
		row := make([]string, len(cols))
		for j, col := range cols {
			row[j] = export.DisplayField(rec, col)
		}
		rows[i] = row
	}
	return DetailView{Columns: cols, Rows: rows}
}

func fmtDay(d time.Time) string {
	return fmt.Sprintf("%d/%d/%d", int(d.Month()), d.Day(), d.Year())
}
