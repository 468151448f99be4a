package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/campusops/resdash/internal/model"
	"github.com/campusops/resdash/internal/normalize"
)

func TestColumns_PreferredOrderThenRest(t *testing.T) {
	all := func(string) bool { return true }
	cols := Columns(all)

	if len(cols) != len(model.AllColumns) {
		t.Fatalf("expected all %d columns, got %d", len(model.AllColumns), len(cols))
	}
	if cols[0] != model.ColEventDate || cols[1] != model.ColStartTime {
		t.Errorf("preferred order not honored: %v", cols[:3])
	}
	// Remaining columns follow in export order.
	rest := cols[len(model.PreferredDisplayOrder):]
	if rest[0] != model.ColIsAllDayEvent {
		t.Errorf("remaining columns out of order: %v", rest)
	}
}

func TestColumns_AbsentColumnsDropped(t *testing.T) {
	has := func(name string) bool {
		return name == model.ColEventID || name == model.ColTitle
	}
	cols := Columns(has)
	if len(cols) != 2 || cols[0] != model.ColTitle || cols[1] != model.ColEventID {
		t.Errorf("cols = %v", cols)
	}
}

func TestWrite(t *testing.T) {
	records := []model.Record{
		normalize.Apply(model.RawRecord{
			EventID:   "1001",
			Title:     "Chess Club",
			EventDate: "09/03/2025",
			StartTime: "9:00am",
			EndTime:   "11:00PM",
		}, normalize.Options{}),
		normalize.Apply(model.RawRecord{
			EventID:   "1002",
			Title:     "Broken, \"Row\"",
			EventDate: "garbage",
			StartTime: "sometime",
		}, normalize.Options{}),
	}
	cols := []string{model.ColEventDate, model.ColStartTime, model.ColEndTime, model.ColTitle, model.ColEventID}

	var buf bytes.Buffer
	if err := Write(&buf, records, cols); err != nil {
		t.Fatalf("Write: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("re-read csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}

	// Parsed values render in export notation regardless of input spelling.
	if rows[1][0] != "9/3/2025" || rows[1][1] != "9:00AM" || rows[1][2] != "11:00PM" {
		t.Errorf("row 1 = %v", rows[1])
	}
	// Unparsed values pass through untouched, quoting survives round-trip.
	if rows[2][0] != "garbage" || rows[2][1] != "sometime" || rows[2][3] != "Broken, \"Row\"" {
		t.Errorf("row 2 = %v", rows[2])
	}
}
