// Package export serializes the working dataset and its rollups into
// lossless CSV and XLSX downloads.
package export

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"vendoriq/internal/analytics"
	"vendoriq/internal/models"
	"vendoriq/internal/schema"
)

// MarshalCSV renders ds as delimited text: canonical columns first, extra
// columns after, numeric cells at raw precision so a re-import reproduces
// the dataset field for field.
func MarshalCSV(ds *models.Dataset) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(append(append([]string(nil), schema.Columns...), ds.ExtraColumns...)); err != nil {
		return nil, err
	}
	for i := range ds.Records {
		if err := w.Write(recordRow(&ds.Records[i], ds.ExtraColumns)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func recordRow(rec *models.Record, extraCols []string) []string {
	row := make([]string, 0, len(schema.Columns)+len(extraCols))
	for _, col := range schema.Columns {
		if schema.IsNumeric(col) {
			row = append(row, formatNumber(rec.Numeric(col)))
		} else {
			row = append(row, rec.Text(col))
		}
	}
	for _, col := range extraCols {
		row = append(row, rec.Extras[col])
	}
	return row
}

// formatNumber emits the shortest decimal text that parses back to the same
// float64, keeping exports lossless.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// VendorSummaryCSV renders per-vendor aggregation rows for download.
func VendorSummaryCSV(aggs []analytics.Aggregate) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"Supplier", "Records", "Total_Net", "Total_Material", "Total_Tax",
		"Total_Discount", "Total_Freight", "Avg_Rate", "Share_%",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, g := range aggs {
		row := []string{
			g.Key,
			strconv.Itoa(g.Records),
			formatNumber(g.NetTotal),
			formatNumber(g.MaterialTotal),
			formatNumber(g.TaxTotal),
			formatNumber(g.DiscountTotal),
			formatNumber(g.FreightTotal),
			formatNumber(g.AvgRate),
			strconv.FormatFloat(g.Share, 'f', 1, 64),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// TemplateCSV is the downloadable schema template: the canonical header row
// plus one example data row.
func TemplateCSV() []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write(schema.Columns)
	w.Write([]string{
		"01/04/2024", "PO-00001", "Vendor Name", "ITM-001", "72071190",
		"Item Description", "28/03/2024", "IN-00001", "NOS",
		"10", "5000", "50000", "0", "500", "8910", "1500", "250", "60160",
	})
	w.Flush()
	return buf.Bytes()
}
