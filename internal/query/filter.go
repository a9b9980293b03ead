// Package query filters and sorts the working dataset into view subsets.
package query

import (
	"strings"

	"vendoriq/internal/models"
	"vendoriq/internal/schema"
)

// globalSearchColumns are scanned by the top-level keyword search.
var globalSearchColumns = []string{
	schema.ColSupplier, schema.ColDescription, schema.ColPONumber,
	schema.ColItem, schema.ColHSN, schema.ColIndentNo,
}

// tableSearchColumns are scanned by the narrower in-table search.
var tableSearchColumns = []string{
	schema.ColSupplier, schema.ColDescription, schema.ColPONumber,
	schema.ColItem, schema.ColHSN,
}

// Filter is a declarative view specification. Every populated clause must
// pass (logical AND); the keyword clauses match when any of their scanned
// columns contains the query.
type Filter struct {
	// Search is the global keyword, matched case-insensitively as a
	// substring of Supplier, Item Description, PO No, Item, HSN No and
	// Indent No. Blank means no filtering.
	Search string
	// TableSearch is the in-table keyword over the narrower column set
	// (no Indent No).
	TableSearch string
	// Suppliers passes records whose Supplier is in the set; an empty set
	// passes everything.
	Suppliers []string
	// Supplier, when set, requires an exact Supplier match.
	Supplier string
	// ItemQuery is a case-insensitive substring match on Item Description,
	// independent of the keyword searches.
	ItemQuery string
	// NetMin and NetMax bound Net inclusively. When they are equal the
	// range is treated as unconstrained, not as an exact-value filter;
	// collapsed slider bounds must not hide every record.
	NetMin float64
	NetMax float64
}

// Match reports whether rec passes every clause of the filter.
func (f *Filter) Match(rec *models.Record) bool {
	if q := strings.TrimSpace(f.Search); q != "" && !containsAny(rec, globalSearchColumns, q) {
		return false
	}
	if q := strings.TrimSpace(f.TableSearch); q != "" && !containsAny(rec, tableSearchColumns, q) {
		return false
	}
	if len(f.Suppliers) > 0 && !contains(f.Suppliers, rec.Supplier) {
		return false
	}
	if f.Supplier != "" && rec.Supplier != f.Supplier {
		return false
	}
	if q := strings.TrimSpace(f.ItemQuery); q != "" &&
		!strings.Contains(strings.ToLower(rec.Description), strings.ToLower(q)) {
		return false
	}
	if f.NetMin != f.NetMax && (rec.Net < f.NetMin || rec.Net > f.NetMax) {
		return false
	}
	return true
}

// Apply produces the view subset for f, preserving record order. The
// returned dataset shares the extra-column list with the input.
func Apply(ds *models.Dataset, f *Filter) *models.Dataset {
	out := &models.Dataset{ExtraColumns: ds.ExtraColumns}
	for i := range ds.Records {
		if f.Match(&ds.Records[i]) {
			out.Records = append(out.Records, ds.Records[i])
		}
	}
	return out
}

func containsAny(rec *models.Record, cols []string, q string) bool {
	q = strings.ToLower(q)
	for _, col := range cols {
		if strings.Contains(strings.ToLower(rec.Text(col)), q) {
			return true
		}
	}
	return false
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
