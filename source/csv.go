// Package source reads tabular bibliographic input into row records keyed
// by CSV column header.
package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Row is one CSV data row keyed by column header. Rows are ephemeral: read
// once per conversion, never mutated.
type Row struct {
	// Number is the 1-based data row number (excluding the header row),
	// used in issue reports.
	Number int

	values map[string]string
}

// Get returns the raw cell value for a column header, "" when the column
// does not exist.
func (r Row) Get(header string) string {
	return r.values[header]
}

// Has reports whether the row's table carries the column at all.
func (r Row) Has(header string) bool {
	_, ok := r.values[header]
	return ok
}

// NewRow builds a row from explicit header→value pairs. Intended for tests
// and programmatic callers.
func NewRow(number int, values map[string]string) Row {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return Row{Number: number, values: copied}
}

// ReadRows parses CSV input with a header row into ordered row records.
// Headers are trimmed of surrounding whitespace and a UTF-8 BOM; cell
// values are kept verbatim. Duplicate headers and ragged rows are errors.
func ReadRows(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("input is empty: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header row: %w", err)
	}

	seen := make(map[string]struct{}, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF"))
		headers[i] = h
		if h == "" {
			return nil, fmt.Errorf("column %d has an empty header", i+1)
		}
		if _, dup := seen[h]; dup {
			return nil, fmt.Errorf("duplicate column header %q", h)
		}
		seen[h] = struct{}{}
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}

		values := make(map[string]string, len(headers))
		for i, h := range headers {
			values[h] = record[i]
		}
		rows = append(rows, Row{Number: len(rows) + 1, values: values})
	}

	return rows, nil
}

// ReadFile reads CSV rows from a file on disk.
func ReadFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := ReadRows(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}
