// Package tabular reads reservation export files regardless of container
// format. Every reader yields raw string-typed rows; typing is the
// normalizer's job.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/campusops/resdash/internal/model"
)

// Reader streams raw export rows from a single file.
type Reader interface {
	// Columns returns the canonical column names the source carries, in
	// source order. Unknown columns are dropped at the reader boundary.
	Columns() []string
	// Read returns the next row, or io.EOF when the source is exhausted.
	Read() (model.RawRecord, error)
	Close() error
}

// Open dispatches on the file extension and returns a streaming Reader.
func Open(path string) (Reader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return openCSV(path)
	case ".xlsx":
		return openXLSX(path)
	case ".parquet":
		return openParquet(path)
	}
	return nil, fmt.Errorf("unsupported file type %q: upload a CSV, Excel (.xlsx), or Parquet file", filepath.Ext(path))
}

// mapHeader trims header cells and keeps only canonical columns, recording
// the source index of each.
func mapHeader(header []string) (names []string, indexes []int) {
	for i, cell := range header {
		name := strings.TrimSpace(cell)
		if _, ok := model.ColumnByName(name); ok {
			names = append(names, name)
			indexes = append(indexes, i)
		}
	}
	return names, indexes
}

type csvReader struct {
	file    *os.File
	r       *csv.Reader
	names   []string
	indexes []int
}

func openCSV(path string) (*csvReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file: %w", err)
	}

	r := csv.NewReader(f)
	// Export rows occasionally carry ragged trailing cells; never abort on
	// a count mismatch.
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		f.Close()
		if err == io.EOF {
			return nil, fmt.Errorf("csv file is empty")
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	names, indexes := mapHeader(header)
	return &csvReader{file: f, r: r, names: names, indexes: indexes}, nil
}

func (c *csvReader) Columns() []string { return c.names }

func (c *csvReader) Read() (model.RawRecord, error) {
	var rec model.RawRecord
	row, err := c.r.Read()
	if err == io.EOF {
		return rec, io.EOF
	}
	if err != nil {
		return rec, fmt.Errorf("read csv row: %w", err)
	}
	for i, name := range c.names {
		if idx := c.indexes[i]; idx < len(row) {
			rec.SetField(name, row[idx])
		}
	}
	return rec, nil
}

func (c *csvReader) Close() error { return c.file.Close() }

type xlsxReader struct {
	file    *excelize.File
	rows    [][]string
	pos     int
	names   []string
	indexes []int
}

func openXLSX(path string) (*xlsxReader, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx file: %w", err)
	}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		f.Close()
		return nil, fmt.Errorf("xlsx file has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read xlsx sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		f.Close()
		return nil, fmt.Errorf("xlsx sheet %q is empty", sheets[0])
	}

	names, indexes := mapHeader(rows[0])
	return &xlsxReader{file: f, rows: rows[1:], names: names, indexes: indexes}, nil
}

func (x *xlsxReader) Columns() []string { return x.names }

func (x *xlsxReader) Read() (model.RawRecord, error) {
	var rec model.RawRecord
	if x.pos >= len(x.rows) {
		return rec, io.EOF
	}
	row := x.rows[x.pos]
	x.pos++
	for i, name := range x.names {
		if idx := x.indexes[i]; idx < len(row) {
			rec.SetField(name, row[idx])
		}
	}
	return rec, nil
}

func (x *xlsxReader) Close() error { return x.file.Close() }
