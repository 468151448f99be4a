package model

import "time"

// LoadSummary captures metrics from a single file load.
type LoadSummary struct {
	FilePath          string
	FileSHA256        string
	BatchID           string
	RowsRead          int64
	DateParseFailures int64
	TimeParseFailures int64
	MissingColumns    []string
	DurationRead      time.Duration
	DurationNormalize time.Duration
	DurationTotal     time.Duration
}
