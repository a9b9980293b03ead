// Package ingest parses uploaded CSV and spreadsheet files and normalizes
// them into the canonical purchase-order schema.
package ingest

import (
	"io"
	"path/filepath"
	"strings"
)

// Table is a raw parsed upload: a header row plus string cell rows, types
// unknown. Rows may be ragged; the normalizer pads missing cells.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Empty reports whether the table has no data rows.
func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

// ReadTable parses an upload into a Table, choosing the reader from the file
// extension: .csv and .txt are read as delimited text, anything else as a
// spreadsheet workbook (first sheet). A stream that cannot be parsed yields
// a *FileReadError and no table.
func ReadTable(filename string, r io.Reader) (*Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".txt":
		return readCSV(filename, r)
	default:
		return readWorkbook(filename, r)
	}
}
