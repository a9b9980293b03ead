package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendoriq/internal/schema"
)

func TestNormalizeEmptyTable(t *testing.T) {
	assert.Equal(t, 0, Normalize(nil).Len())
	assert.Equal(t, 0, Normalize(&Table{}).Len())
	assert.Equal(t, 0, Normalize(&Table{Headers: []string{"vendor", "net"}}).Len())
}

func TestNormalizeTotality(t *testing.T) {
	// Unrecognized headers still produce fully populated records: text
	// defaults to "" and numerics to 0, with the source cells preserved
	// as extras.
	ds := Normalize(&Table{
		Headers: []string{"mystery", "junk"},
		Rows:    [][]string{{"a", "b"}},
	})
	require.Equal(t, 1, ds.Len())
	rec := ds.Records[0]
	for _, col := range schema.TextColumns {
		assert.Equal(t, "", rec.Text(col), col)
	}
	for _, col := range schema.NumericColumns {
		assert.Equal(t, 0.0, rec.Numeric(col), col)
	}
	assert.Equal(t, []string{"mystery", "junk"}, ds.ExtraColumns)
	assert.Equal(t, "a", rec.Extras["mystery"])
}

func TestNormalizeAliasBinding(t *testing.T) {
	ds := Normalize(&Table{
		Headers: []string{"VENDOR", " qty ", "unit_price", "net_value"},
		Rows:    [][]string{{"Tata Steel Ltd", "10", "250.5", "2505"}},
	})
	require.Equal(t, 1, ds.Len())
	rec := ds.Records[0]
	assert.Equal(t, "Tata Steel Ltd", rec.Supplier)
	assert.Equal(t, 10.0, rec.Quantity)
	assert.Equal(t, 250.5, rec.Rate)
	assert.Equal(t, 2505.0, rec.Net)
	assert.Empty(t, ds.ExtraColumns)
}

func TestNormalizePlaceholderCollapse(t *testing.T) {
	ds := Normalize(&Table{
		Headers: []string{"supplier", "item_code", "hsn"},
		Rows: [][]string{
			{"nan", " None ", "NaN"},
			{"  Bosch India  ", "ITM-1", ""},
		},
	})
	require.Equal(t, 2, ds.Len())
	assert.Equal(t, "", ds.Records[0].Supplier)
	assert.Equal(t, "", ds.Records[0].Item)
	assert.Equal(t, "", ds.Records[0].HSN)
	assert.Equal(t, "Bosch India", ds.Records[1].Supplier)
}

func TestNormalizeLenientNumerics(t *testing.T) {
	ds := Normalize(&Table{
		Headers: []string{"qty", "rate", "tax", "freight"},
		Rows:    [][]string{{"abc", "", "1e3", " 42.5 "}},
	})
	require.Equal(t, 1, ds.Len())
	rec := ds.Records[0]
	assert.Equal(t, 0.0, rec.Quantity)
	assert.Equal(t, 0.0, rec.Rate)
	assert.Equal(t, 1000.0, rec.Tax)
	assert.Equal(t, 42.5, rec.Freight)
}

func TestNormalizeNetReconciliation(t *testing.T) {
	headers := []string{"basic", "excise", "disc", "gst", "freight", "others", "net"}

	// Net supplied as zero: recomputed from the components.
	ds := Normalize(&Table{
		Headers: headers,
		Rows:    [][]string{{"50000", "0", "500", "8910", "1500", "250", "0"}},
	})
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, 60160.0, ds.Records[0].Net)

	// Net supplied nonzero: trusted as-is, even when it disagrees.
	ds = Normalize(&Table{
		Headers: headers,
		Rows:    [][]string{{"50000", "0", "500", "8910", "1500", "250", "99999"}},
	})
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, 99999.0, ds.Records[0].Net)
}

func TestNormalizeMissingNetColumnComputed(t *testing.T) {
	ds := Normalize(&Table{
		Headers: []string{"basic", "gst"},
		Rows:    [][]string{{"100", "18"}},
	})
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, 118.0, ds.Records[0].Net)
}

func TestNormalizeRaggedRows(t *testing.T) {
	ds := Normalize(&Table{
		Headers: []string{"vendor", "net", "remarks"},
		Rows: [][]string{
			{"Siemens Ltd"},
			{"L&T Engineering", "500", "urgent", "overflow-cell"},
		},
	})
	require.Equal(t, 2, ds.Len())
	assert.Equal(t, 0.0, ds.Records[0].Net)
	assert.Equal(t, "", ds.Records[0].Extras["remarks"])
	assert.Equal(t, "urgent", ds.Records[1].Extras["remarks"])
}

func TestNormalizeSecondSynonymColumnStaysExtra(t *testing.T) {
	// Once a column claims Supplier its remaining synonyms stop binding;
	// the second column survives as an extra.
	ds := Normalize(&Table{
		Headers: []string{"Supplier", "vendor_name"},
		Rows:    [][]string{{"First Co", "Second Co"}},
	})
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, "First Co", ds.Records[0].Supplier)
	assert.Equal(t, []string{"vendor_name"}, ds.ExtraColumns)
	assert.Equal(t, "Second Co", ds.Records[0].Extras["vendor_name"])
}

func TestNormalizeCaseCollidingHeadersBindLaterColumn(t *testing.T) {
	// "Supplier" and "SUPPLIER" collapse to the same lowered spelling, so
	// both positions resolve to Supplier and the rightmost cell wins.
	ds := Normalize(&Table{
		Headers: []string{"Supplier", "SUPPLIER"},
		Rows:    [][]string{{"First Co", "Second Co"}},
	})
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, "Second Co", ds.Records[0].Supplier)
}

func TestCleanRecordIdempotent(t *testing.T) {
	ds := Normalize(&Table{
		Headers: []string{"vendor", "po_no"},
		Rows:    [][]string{{"  Tata Steel Ltd ", "PO-1"}},
	})
	require.Equal(t, 1, ds.Len())
	rec := ds.Records[0]
	CleanRecord(&rec)
	CleanRecord(&rec)
	assert.Equal(t, "Tata Steel Ltd", rec.Supplier)
	assert.Equal(t, "PO-1", rec.PONumber)
}

func TestReadTableCSV(t *testing.T) {
	csvData := "vendor,qty,net\nTata Steel Ltd,10,500\nSiemens Ltd,5,250\n"
	table, err := ReadTable("upload.csv", strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, []string{"vendor", "qty", "net"}, table.Headers)
	assert.Len(t, table.Rows, 2)
}

func TestReadTableEmptyCSV(t *testing.T) {
	table, err := ReadTable("empty.csv", strings.NewReader(""))
	require.NoError(t, err)
	assert.True(t, table.Empty())
	assert.Equal(t, 0, Normalize(table).Len())
}

func TestReadTableCorruptWorkbook(t *testing.T) {
	_, err := ReadTable("broken.xlsx", strings.NewReader("this is not a zip archive"))
	require.Error(t, err)
	var readErr *FileReadError
	assert.ErrorAs(t, err, &readErr)
	assert.Equal(t, "broken.xlsx", readErr.Filename)
}

func TestParseFileFailureYieldsEmptyDataset(t *testing.T) {
	ds, err := ParseFile("broken.xlsx", strings.NewReader("garbage"))
	require.Error(t, err)
	require.NotNil(t, ds)
	assert.Equal(t, 0, ds.Len())
}
