package aggregate

import (
	"sort"
	"strconv"

	"github.com/campusops/resdash/internal/model"
)

// Pivot is a zero-filled cross-count table: Cells[i][j] counts records with
// row value Rows[i] and column value Cols[j].
type Pivot struct {
	Rows  []string `json:"rows"`
	Cols  []string `json:"cols"`
	Cells [][]int  `json:"cells"`
}

// LocationByDepartment cross-counts reservations by location and department.
// Rows and columns are sorted ascending; records missing either value are
// skipped.
func LocationByDepartment(records []model.Record) Pivot {
	return crossCounts(records,
		func(r model.Record) (string, bool) { return r.Raw.Location, r.Raw.Location != "" },
		func(r model.Record) (string, bool) { return r.Raw.Department, r.Raw.Department != "" },
		sort.Strings)
}

// LocationByHour cross-counts timed reservations by location and start hour,
// the "hot rooms by time" heatmap. Hour columns are the hours present,
// ascending; all-day records are excluded.
func LocationByHour(records []model.Record) Pivot {
	return crossCounts(records,
		func(r model.Record) (string, bool) { return r.Raw.Location, r.Raw.Location != "" },
		func(r model.Record) (string, bool) {
			if !timedOnly(r) || r.StartHour == nil {
				return "", false
			}
			return strconv.Itoa(*r.StartHour), true
		},
		sortNumeric)
}

func crossCounts(records []model.Record, rowKey, colKey func(model.Record) (string, bool), sortCols func([]string)) Pivot {
	type cell struct{ row, col string }
	counts := make(map[cell]int)
	rowSet := make(map[string]bool)
	colSet := make(map[string]bool)

	for _, rec := range records {
		row, ok := rowKey(rec)
		if !ok {
			continue
		}
		col, ok := colKey(rec)
		if !ok {
			continue
		}
		counts[cell{row, col}]++
		rowSet[row] = true
		colSet[col] = true
	}

	p := Pivot{
		Rows: make([]string, 0, len(rowSet)),
		Cols: make([]string, 0, len(colSet)),
	}
	for r := range rowSet {
		p.Rows = append(p.Rows, r)
	}
	for c := range colSet {
		p.Cols = append(p.Cols, c)
	}
	sort.Strings(p.Rows)
	sortCols(p.Cols)

	p.Cells = make([][]int, len(p.Rows))
	for i, r := range p.Rows {
		p.Cells[i] = make([]int, len(p.Cols))
		for j, c := range p.Cols {
			p.Cells[i][j] = counts[cell{r, c}]
		}
	}
	return p
}

func sortNumeric(vals []string) {
	sort.Slice(vals, func(i, j int) bool {
		a, _ := strconv.Atoi(vals[i])
		b, _ := strconv.Atoi(vals[j])
		return a < b
	})
}
