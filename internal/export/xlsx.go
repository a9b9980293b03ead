package export

import (
	"github.com/xuri/excelize/v2"

	"vendoriq/internal/models"
	"vendoriq/internal/schema"
)

const sheetName = "VendorData"

// MarshalXLSX renders ds as a single-sheet workbook with the same column
// layout as the CSV export. Numeric cells keep their raw float values.
func MarshalXLSX(ds *models.Dataset) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	header := make([]interface{}, 0, len(schema.Columns)+len(ds.ExtraColumns))
	for _, col := range schema.Columns {
		header = append(header, col)
	}
	for _, col := range ds.ExtraColumns {
		header = append(header, col)
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, err
	}

	for i := range ds.Records {
		rec := &ds.Records[i]
		row := make([]interface{}, 0, len(header))
		for _, col := range schema.Columns {
			if schema.IsNumeric(col) {
				row = append(row, rec.Numeric(col))
			} else {
				row = append(row, rec.Text(col))
			}
		}
		for _, col := range ds.ExtraColumns {
			row = append(row, rec.Extras[col])
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
