// Package filter narrows a normalized record set by date range, category
// membership, and free-text search. Filtering is pure and re-run in full on
// every interaction.
package filter

import (
	"strings"
	"time"

	"github.com/campusops/resdash/internal/model"
)

// Params describes one filter state. Zero values impose no restriction: a
// nil bound leaves that side of the date range open, an empty selection
// admits every value, and an empty search string matches everything.
type Params struct {
	From *time.Time
	To   *time.Time

	Locations      []string
	Departments    []string
	Statuses       []string
	EventTypeNames []string

	// Search is matched case-insensitively as a substring of Title,
	// ContactName, and ContactEmail; a record is kept on any hit.
	Search string
}

// Apply returns the records matching p, preserving input order.
func Apply(records []model.Record, p Params) []model.Record {
	out := make([]model.Record, 0, len(records))
	for _, rec := range records {
		if matches(rec, p) {
			out = append(out, rec)
		}
	}
	return out
}

func matches(rec model.Record, p Params) bool {
	if p.From != nil || p.To != nil {
		// A dated range can only admit dated records.
		if rec.EventDate == nil {
			return false
		}
		// Both bounds inclusive.
		if p.From != nil && rec.EventDate.Before(*p.From) {
			return false
		}
		if p.To != nil && rec.EventDate.After(*p.To) {
			return false
		}
	}

	if !inSet(rec.Raw.Location, p.Locations) {
		return false
	}
	if !inSet(rec.Raw.Department, p.Departments) {
		return false
	}
	if !inSet(rec.Raw.Status, p.Statuses) {
		return false
	}
	if !inSet(rec.Raw.EventTypeName, p.EventTypeNames) {
		return false
	}

	if s := strings.TrimSpace(p.Search); s != "" {
		needle := strings.ToLower(s)
		hit := false
		for _, col := range model.SearchableColumns() {
			if strings.Contains(strings.ToLower(rec.Raw.Field(col)), needle) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}

	return true
}

func inSet(value string, set []string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if value == s {
			return true
		}
	}
	return false
}
