// Package analytics computes per-group rollups, KPI summaries and
// declarative chart specifications from a dataset view.
package analytics

import (
	"math"
	"sort"

	"vendoriq/internal/models"
	"vendoriq/internal/schema"
)

// Grouping fields accepted by GroupBy.
const (
	GroupSupplier = schema.ColSupplier
	GroupItem     = schema.ColDescription
	GroupUOM      = schema.ColUOM
)

// Aggregate is one derived per-group summary row. Aggregates are recomputed
// on demand from the current view and never persisted.
type Aggregate struct {
	Key           string  `json:"key"`
	Records       int     `json:"records"`
	NetTotal      float64 `json:"net_total"`
	MaterialTotal float64 `json:"material_total"`
	TaxTotal      float64 `json:"tax_total"`
	DiscountTotal float64 `json:"discount_total"`
	FreightTotal  float64 `json:"freight_total"`
	OthersTotal   float64 `json:"others_total"`
	AvgRate       float64 `json:"avg_rate"`
	// Share is the group's percentage of total Net across the view,
	// rounded to one decimal. All zero when the view's total Net is zero.
	Share float64 `json:"share"`
}

// Summary holds the KPI values for the current view.
type Summary struct {
	Records         int     `json:"records"`
	TotalNet        float64 `json:"total_net"`
	TotalMaterial   float64 `json:"total_material"`
	TotalTax        float64 `json:"total_tax"`
	TotalDiscount   float64 `json:"total_discount"`
	UniqueSuppliers int     `json:"unique_suppliers"`
}

// Summarize computes the KPI totals over ds.
func Summarize(ds *models.Dataset) Summary {
	s := Summary{Records: ds.Len()}
	suppliers := make(map[string]bool)
	for i := range ds.Records {
		rec := &ds.Records[i]
		s.TotalNet += rec.Net
		s.TotalMaterial += rec.Material
		s.TotalTax += rec.Tax
		s.TotalDiscount += rec.Discount
		suppliers[rec.Supplier] = true
	}
	s.UniqueSuppliers = len(suppliers)
	return s
}

// GroupBy produces one Aggregate per distinct value of the grouping column,
// ordered by Net total (descending by default, ascending for bottom-N
// views). Group keys tie-break alphabetically. limit > 0 truncates to the
// first limit rows after ordering.
func GroupBy(ds *models.Dataset, col string, ascending bool, limit int) []Aggregate {
	index := make(map[string]int)
	rateSums := make(map[string]float64)
	var groups []Aggregate

	for i := range ds.Records {
		rec := &ds.Records[i]
		key := rec.Text(col)
		gi, ok := index[key]
		if !ok {
			gi = len(groups)
			index[key] = gi
			groups = append(groups, Aggregate{Key: key})
		}
		g := &groups[gi]
		g.Records++
		g.NetTotal += rec.Net
		g.MaterialTotal += rec.Material
		g.TaxTotal += rec.Tax
		g.DiscountTotal += rec.Discount
		g.FreightTotal += rec.Freight
		g.OthersTotal += rec.Others
		rateSums[key] += rec.Rate
	}

	var totalNet float64
	for i := range groups {
		groups[i].AvgRate = rateSums[groups[i].Key] / float64(groups[i].Records)
		totalNet += groups[i].NetTotal
	}
	for i := range groups {
		if totalNet != 0 {
			groups[i].Share = round1(groups[i].NetTotal / totalNet * 100)
		}
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })
	sort.SliceStable(groups, func(i, j int) bool {
		if ascending {
			return groups[i].NetTotal < groups[j].NetTotal
		}
		return groups[i].NetTotal > groups[j].NetTotal
	})

	if limit > 0 && len(groups) > limit {
		groups = groups[:limit]
	}
	return groups
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
