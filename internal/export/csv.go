// Package export writes the currently filtered view back out as CSV, the
// dashboard's download format.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/campusops/resdash/internal/model"
)

// Columns returns the export column order: the preferred display columns the
// source carries, followed by any remaining carried columns in export order.
func Columns(has func(string) bool) []string {
	var out []string
	listed := make(map[string]bool)
	for _, name := range model.PreferredDisplayOrder {
		listed[name] = true
		if has(name) {
			out = append(out, name)
		}
	}
	for _, col := range model.AllColumns {
		if !listed[col.Name] && has(col.Name) {
			out = append(out, col.Name)
		}
	}
	return out
}

// DisplayField renders one cell of the detail view: parsed dates and clocks
// are formatted back into the export's own notation, and values that never
// parsed pass through as the source wrote them.
func DisplayField(rec model.Record, col string) string {
	switch col {
	case model.ColEventDate:
		if rec.EventDate != nil {
			d := *rec.EventDate
			return fmt.Sprintf("%d/%d/%d", int(d.Month()), d.Day(), d.Year())
		}
	case model.ColStartTime:
		if rec.StartTime != nil {
			return rec.StartTime.String()
		}
	case model.ColEndTime:
		if rec.EndTime != nil {
			return rec.EndTime.String()
		}
	}
	return rec.Raw.Field(col)
}

// Write streams records as CSV in the given column order, header first.
func Write(w io.Writer, records []model.Record, cols []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(cols); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	row := make([]string, len(cols))
	for i := range records {
		for j, col := range cols {
			row[j] = DisplayField(records[i], col)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
