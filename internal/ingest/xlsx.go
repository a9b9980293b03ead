package ingest

import (
	"errors"
	"io"

	"github.com/xuri/excelize/v2"
)

// readWorkbook reads the first sheet of a spreadsheet workbook as a table.
func readWorkbook(filename string, r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &FileReadError{Filename: filename, Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &FileReadError{Filename: filename, Err: errors.New("workbook has no sheets")}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &FileReadError{Filename: filename, Err: err}
	}
	if len(rows) == 0 {
		return &Table{}, nil
	}
	return &Table{Headers: rows[0], Rows: rows[1:]}, nil
}
