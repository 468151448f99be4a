// Package reservations runs the load pipeline: open a tabular export, check
// its schema, read rows, and normalize them into an immutable Dataset.
package reservations

import (
	"github.com/campusops/resdash/internal/model"
)

// Dataset is the product of one load: every record from the file, normalized
// 1:1, plus load metadata. It is immutable after construction and replaced
// wholesale when a new file is loaded.
type Dataset struct {
	Records []model.Record
	Summary model.LoadSummary

	present map[string]bool
}

// HasColumn reports whether the source file carried the given canonical
// column. Views over absent columns render a placeholder instead of data.
func (d *Dataset) HasColumn(name string) bool {
	return d.present[name]
}

// MissingColumns returns the canonical columns the source did not carry.
func (d *Dataset) MissingColumns() []string {
	return d.Summary.MissingColumns
}
