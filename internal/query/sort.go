package query

import (
	"sort"

	"vendoriq/internal/models"
)

// Sort keys. Each key carries its own fixed direction; PO date sorts on the
// raw date text.
const (
	SortNetDesc      = "net_desc"
	SortNetAsc       = "net_asc"
	SortPODateDesc   = "po_dt_desc"
	SortSupplierAsc  = "supplier_asc"
	SortRateDesc     = "rate_desc"
	SortMaterialDesc = "material_desc"
)

// SortRecords sorts recs in place by the named key. Sorting is stable, so
// ties keep their prior relative order. An empty key leaves the order
// untouched; an unknown key falls back to net_desc.
func SortRecords(recs []models.Record, key string) {
	if key == "" {
		return
	}
	var less func(a, b *models.Record) bool
	switch key {
	case SortNetAsc:
		less = func(a, b *models.Record) bool { return a.Net < b.Net }
	case SortPODateDesc:
		less = func(a, b *models.Record) bool { return a.PODate > b.PODate }
	case SortSupplierAsc:
		less = func(a, b *models.Record) bool { return a.Supplier < b.Supplier }
	case SortRateDesc:
		less = func(a, b *models.Record) bool { return a.Rate > b.Rate }
	case SortMaterialDesc:
		less = func(a, b *models.Record) bool { return a.Material > b.Material }
	default: // SortNetDesc
		less = func(a, b *models.Record) bool { return a.Net > b.Net }
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return less(&recs[i], &recs[j])
	})
}

// Suppliers returns the distinct non-empty supplier names in ds, sorted
// ascending, for populating categorical filter choices.
func Suppliers(ds *models.Dataset) []string {
	seen := make(map[string]bool)
	var out []string
	for i := range ds.Records {
		s := ds.Records[i].Supplier
		if s != "" && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

// NetBounds returns the minimum and maximum Net in ds. An empty dataset
// reports 0, 0, which the range filter treats as unconstrained.
func NetBounds(ds *models.Dataset) (min, max float64) {
	for i := range ds.Records {
		n := ds.Records[i].Net
		if i == 0 || n < min {
			min = n
		}
		if i == 0 || n > max {
			max = n
		}
	}
	return min, max
}
