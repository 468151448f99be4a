package filter

import (
	"testing"
	"time"

	"github.com/campusops/resdash/internal/model"
	"github.com/campusops/resdash/internal/normalize"
)

func rec(id, title, location, status, date, contact, email string) model.Record {
	return normalize.Apply(model.RawRecord{
		EventID:      id,
		Title:        title,
		Location:     location,
		Status:       status,
		EventDate:    date,
		ContactName:  contact,
		ContactEmail: email,
	}, normalize.Options{})
}

func date(s string) *time.Time {
	return normalize.ParseDate(s, false)
}

func ids(recs []model.Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Raw.EventID
	}
	return out
}

func TestApply_DateRangeInclusive(t *testing.T) {
	records := []model.Record{
		rec("1", "a", "", "", "9/1/2025", "", ""),
		rec("2", "b", "", "", "9/3/2025", "", ""),
		rec("3", "c", "", "", "9/5/2025", "", ""),
		rec("4", "d", "", "", "9/7/2025", "", ""),
		rec("5", "undated", "", "", "", "", ""),
	}

	got := Apply(records, Params{From: date("9/3/2025"), To: date("9/5/2025")})
	if len(got) != 2 || got[0].Raw.EventID != "2" || got[1].Raw.EventID != "3" {
		t.Fatalf("boundary records not inclusive: %v", ids(got))
	}

	// No range set: undated records pass through.
	got = Apply(records, Params{})
	if len(got) != 5 {
		t.Fatalf("no-op filter dropped records: %v", ids(got))
	}

	// Open-ended lower bound.
	got = Apply(records, Params{To: date("9/1/2025")})
	if len(got) != 1 || got[0].Raw.EventID != "1" {
		t.Fatalf("open-ended range wrong: %v", ids(got))
	}
}

func TestApply_EmptySetNoRestriction(t *testing.T) {
	records := []model.Record{
		rec("1", "a", "Library 201", "Active", "", "", ""),
		rec("2", "b", "Union A", "Cancelled", "", "", ""),
	}

	got := Apply(records, Params{Locations: nil, Statuses: []string{}})
	if len(got) != len(records) {
		t.Fatalf("empty selection restricted: %v", ids(got))
	}

	got = Apply(records, Params{Locations: []string{"Union A"}})
	if len(got) != 1 || got[0].Raw.EventID != "2" {
		t.Fatalf("membership filter wrong: %v", ids(got))
	}

	got = Apply(records, Params{Locations: []string{"Union A"}, Statuses: []string{"Active"}})
	if len(got) != 0 {
		t.Fatalf("filters should intersect: %v", ids(got))
	}
}

func TestApply_Search(t *testing.T) {
	records := []model.Record{
		rec("1", "Chess Club", "", "", "", "Ada Lovelace", "ada@example.edu"),
		rec("2", "Robotics", "", "", "", "Grace Hopper", "grace@example.edu"),
		rec("3", "Budget Review", "", "", "", "Lin", "lin@chessmail.edu"),
	}

	got := Apply(records, Params{Search: "chess"})
	if len(got) != 2 || got[0].Raw.EventID != "1" || got[1].Raw.EventID != "3" {
		t.Fatalf("search should span title and email: %v", ids(got))
	}

	got = Apply(records, Params{Search: "HOPPER"})
	if len(got) != 1 || got[0].Raw.EventID != "2" {
		t.Fatalf("search should be case-insensitive: %v", ids(got))
	}

	got = Apply(records, Params{Search: "   "})
	if len(got) != 3 {
		t.Fatalf("blank search restricted: %v", ids(got))
	}
}
