// Package aggregate computes the chart datasets of the dashboard. Every
// function is a pure transformation of a filtered record set.
package aggregate

import (
	"sort"
	"strings"

	"github.com/campusops/resdash/internal/model"
)

// OtherLabel is the synthetic category absorbing everything past the top N.
const OtherLabel = "Other"

// CategoryCount is one bar or pie slice.
type CategoryCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// ValueCounts counts records per value of key, in first-encountered order.
// Records with an empty value are skipped.
func ValueCounts(records []model.Record, key func(model.Record) string) []CategoryCount {
	idx := make(map[string]int)
	var out []CategoryCount
	for _, rec := range records {
		v := key(rec)
		if v == "" {
			continue
		}
		if i, ok := idx[v]; ok {
			out[i].Count++
			continue
		}
		idx[v] = len(out)
		out = append(out, CategoryCount{Value: v, Count: 1})
	}
	return out
}

// TopNWithOther keeps the n highest counts and sums the remainder into a
// single "Other" bucket, appended only when its count is positive. Ties rank
// by first-encountered order of the input.
func TopNWithOther(counts []CategoryCount, n int) []CategoryCount {
	if n <= 0 || len(counts) == 0 {
		return nil
	}
	ranked := make([]CategoryCount, len(counts))
	copy(ranked, counts)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) <= n {
		return ranked
	}
	top := ranked[:n:n]
	other := 0
	for _, c := range ranked[n:] {
		other += c.Count
	}
	if other > 0 {
		top = append(top, CategoryCount{Value: OtherLabel, Count: other})
	}
	return top
}

// Totals are the dashboard's summary counters.
type Totals struct {
	Reservations      int `json:"reservations"`
	UniqueLocations   int `json:"unique_locations"`
	UniqueDepartments int `json:"unique_departments"`
	Active            int `json:"active"`
}

// Summarize computes the KPI counters over a filtered record set. A record
// counts as active when its status equals "active" ignoring case.
func Summarize(records []model.Record) Totals {
	locations := make(map[string]bool)
	departments := make(map[string]bool)
	totals := Totals{Reservations: len(records)}
	for _, rec := range records {
		if v := rec.Raw.Location; v != "" {
			locations[v] = true
		}
		if v := rec.Raw.Department; v != "" {
			departments[v] = true
		}
		if strings.EqualFold(rec.Raw.Status, "active") {
			totals.Active++
		}
	}
	totals.UniqueLocations = len(locations)
	totals.UniqueDepartments = len(departments)
	return totals
}
