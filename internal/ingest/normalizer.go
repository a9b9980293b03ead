package ingest

import (
	"io"
	"math"
	"strconv"
	"strings"

	"vendoriq/internal/models"
	"vendoriq/internal/schema"
)

// placeholder tokens that mean "no value" in dirty spreadsheets.
var placeholders = map[string]bool{
	"nan":  true,
	"NaN":  true,
	"None": true,
}

// Normalize maps a raw table onto the canonical schema.
//
// Header binding follows the alias table (first alias wins; duplicate
// bindings resolve to the rightmost column). Unbound canonical columns get
// defaults, text cells collapse placeholders to "", numeric cells parse
// leniently with 0 for anything non-finite, and a zero Net is recomputed
// from the component fields. Columns outside the schema are preserved as
// extras. Normalize never fails: an empty or unrecognizable header set just
// produces records built entirely from defaults, and an empty table produces
// an empty dataset.
func Normalize(t *Table) *models.Dataset {
	ds := &models.Dataset{}
	if t == nil || len(t.Headers) == 0 {
		return ds
	}

	resolved := schema.ResolveHeaders(t.Headers)

	// Extra columns keep their trimmed header, first-seen order, skipping
	// unnamed ones.
	seen := make(map[string]bool)
	for i, canon := range resolved {
		if canon != "" {
			continue
		}
		name := strings.TrimSpace(t.Headers[i])
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		ds.ExtraColumns = append(ds.ExtraColumns, name)
	}

	for _, row := range t.Rows {
		rec := models.Record{}
		for i, canon := range resolved {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			switch {
			case canon == "":
				name := strings.TrimSpace(t.Headers[i])
				if name == "" {
					continue
				}
				if rec.Extras == nil {
					rec.Extras = make(map[string]string)
				}
				rec.Extras[name] = strings.TrimSpace(cell)
			case schema.IsNumeric(canon):
				rec.SetNumeric(canon, parseNumber(cell))
			default:
				rec.SetText(canon, cleanText(cell))
			}
		}
		if rec.Net == 0 {
			rec.Net = rec.ReconciledNet()
		}
		ds.Records = append(ds.Records, rec)
	}
	return ds
}

// ParseFile reads and normalizes an upload in one step.
func ParseFile(filename string, r io.Reader) (*models.Dataset, error) {
	t, err := ReadTable(filename, r)
	if err != nil {
		return &models.Dataset{}, err
	}
	return Normalize(t), nil
}

// CleanRecord re-applies the text coercion rules to an existing record. The
// store runs this on every mutation; it is idempotent.
func CleanRecord(rec *models.Record) {
	for _, col := range schema.TextColumns {
		rec.SetText(col, cleanText(rec.Text(col)))
	}
	for k, v := range rec.Extras {
		rec.Extras[k] = strings.TrimSpace(v)
	}
}

func cleanText(s string) string {
	s = strings.TrimSpace(s)
	if placeholders[s] {
		return ""
	}
	return s
}

// parseNumber coerces a cell to a finite float64, defaulting to 0 for
// anything unparseable. Bad numeric data never fails a record.
func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
