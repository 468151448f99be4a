package reservations

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/campusops/resdash/internal/model"
	"github.com/campusops/resdash/internal/normalize"
	"github.com/campusops/resdash/internal/tabular"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Load executes the full load pipeline: open → header → read → normalize.
// Field-level problems degrade to nil on the affected record; only file-level
// problems (unreadable file, unsupported type, missing identifier column)
// fail the load.
func Load(log zerolog.Logger, path string, opts normalize.Options) (*Dataset, error) {
	totalStart := time.Now()
	batchID := uuid.New()

	sha, err := fileHash(path)
	if err != nil {
		return nil, &PipelineError{Phase: "open", Err: err}
	}

	reader, err := tabular.Open(path)
	if err != nil {
		return nil, &PipelineError{Phase: "open", Err: err}
	}
	defer reader.Close()

	cols := reader.Columns()
	missing, err := tabular.CheckColumns(cols)
	if err != nil {
		return nil, &PipelineError{Phase: "header", Err: err}
	}
	if len(missing) > 0 {
		log.Warn().
			Strs("columns", missing).
			Msg("export is missing columns; affected views will show placeholders")
	}

	readStart := time.Now()
	var raws []model.RawRecord
	for {
		raw, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, &PipelineError{Phase: "read", Err: fmt.Errorf("row %d: %w", len(raws)+1, readErr)}
		}
		raws = append(raws, raw)
	}
	readDur := time.Since(readStart)

	normStart := time.Now()
	records, stats := normalize.Records(raws, opts)
	normDur := time.Since(normStart)

	present := make(map[string]bool, len(cols))
	for _, c := range cols {
		present[c] = true
	}

	ds := &Dataset{
		Records: records,
		Summary: model.LoadSummary{
			FilePath:          path,
			FileSHA256:        sha,
			BatchID:           batchID.String(),
			RowsRead:          int64(len(raws)),
			DateParseFailures: stats.DateFailures,
			TimeParseFailures: stats.TimeFailures,
			MissingColumns:    missing,
			DurationRead:      readDur,
			DurationNormalize: normDur,
			DurationTotal:     time.Since(totalStart),
		},
		present: present,
	}

	log.Info().
		Str("file", path).
		Str("sha256", sha).
		Str("batch_id", ds.Summary.BatchID).
		Int64("rows", ds.Summary.RowsRead).
		Int64("date_parse_failures", stats.DateFailures).
		Int64("time_parse_failures", stats.TimeFailures).
		Dur("duration", ds.Summary.DurationTotal).
		Msg("load complete")

	return ds, nil
}
