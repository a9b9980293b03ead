package ingest

import (
	"encoding/csv"
	"io"
)

// readCSV reads delimited text with a header row. Ragged rows are accepted;
// the normalizer fills the gaps.
func readCSV(filename string, r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &FileReadError{Filename: filename, Err: err}
	}
	if len(rows) == 0 {
		return &Table{}, nil
	}
	return &Table{Headers: rows[0], Rows: rows[1:]}, nil
}
