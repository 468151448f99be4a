package tabular

import (
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/campusops/resdash/internal/model"
)

type parquetReader struct {
	file   *os.File
	reader *parquet.GenericReader[model.RawRecord]
	names  []string
	buf    [1]model.RawRecord
}

func openParquet(path string) (*parquetReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open parquet file: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat parquet file: %w", err)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open parquet: %w", err)
	}

	r := parquet.NewGenericReader[model.RawRecord](pf)

	var names []string
	for _, field := range r.Schema().Fields() {
		if _, ok := model.ColumnByName(field.Name()); ok {
			names = append(names, field.Name())
		}
	}

	return &parquetReader{file: f, reader: r, names: names}, nil
}

func (p *parquetReader) Columns() []string { return p.names }

func (p *parquetReader) Read() (model.RawRecord, error) {
	n, err := p.reader.Read(p.buf[:])
	if n > 0 {
		return p.buf[0], nil
	}
	if err == io.EOF {
		return model.RawRecord{}, io.EOF
	}
	if err != nil {
		return model.RawRecord{}, fmt.Errorf("read parquet row: %w", err)
	}
	return model.RawRecord{}, io.EOF
}

func (p *parquetReader) Close() error {
	if err := p.reader.Close(); err != nil {
		p.file.Close()
		return err
	}
	return p.file.Close()
}
