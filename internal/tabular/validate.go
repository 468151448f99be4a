package tabular

import (
	"fmt"

	"github.com/campusops/resdash/internal/model"
)

// CheckColumns compares the columns a source carries against the canonical
// export schema. A missing required column (the identifier) is an error;
// other absent columns are returned as warnings so affected views can show a
// placeholder instead of data.
func CheckColumns(cols []string) (missing []string, err error) {
	present := make(map[string]bool, len(cols))
	for _, c := range cols {
		present[c] = true
	}
	for _, col := range model.AllColumns {
		if present[col.Name] {
			continue
		}
		if col.Required {
			return nil, fmt.Errorf("missing required column: %s", col.Name)
		}
		missing = append(missing, col.Name)
	}
	return missing, nil
}
