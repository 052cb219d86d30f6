// Package dataset parses uploaded CSV files into the descriptor embedded in
// model prompts: the full schema and row count plus a bounded row sample.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// SampleLimit caps how many rows are carried into prompt context. The full
// file is never sent upstream.
const SampleLimit = 50

// Row maps column name to the raw cell value.
type Row map[string]string

// Descriptor summarises one uploaded CSV. It is immutable once built and is
// replaced wholesale by a new upload.
type Descriptor struct {
	FileName string   `json:"fileName"`
	RowCount int      `json:"rowCount"`
	Schema   []string `json:"schema"`
	Sample   []Row    `json:"sample"`
}

// ParseCSV reads the header and all data rows from r, counting every row but
// sampling at most SampleLimit of them. Column names must be non-empty and
// unique; ragged rows are rejected.
func ParseCSV(fileName string, r io.Reader) (*Descriptor, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	schema := make([]string, 0, len(header))
	seen := make(map[string]bool, len(header))
	for i, col := range header {
		name := strings.TrimSpace(col)
		if name == "" {
			return nil, fmt.Errorf("column %d has an empty name", i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		seen[name] = true
		schema = append(schema, name)
	}

	d := &Descriptor{
		FileName: fileName,
		Schema:   schema,
	}

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", d.RowCount+1, err)
		}
		d.RowCount++
		if len(d.Sample) < SampleLimit {
			row := make(Row, len(schema))
			for i, col := range schema {
				row[col] = record[i]
			}
			d.Sample = append(d.Sample, row)
		}
	}

	return d, nil
}
