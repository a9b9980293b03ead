package analytics

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"vendoriq/internal/models"
)

// Palette used by chart color requests, in rank order.
var Palette = []string{
	"#0ea5e9", "#6366f1", "#10b981", "#f59e0b", "#ec4899",
	"#a78bfa", "#38bdf8", "#34d399", "#fb923c", "#f472b6",
}

// ChartRenderError indicates a single chart could not be built from the
// current view. It is isolated per output: the chart is omitted while every
// other chart renders normally.
type ChartRenderError struct {
	Chart string
	Err   error
}

func (e *ChartRenderError) Error() string {
	return fmt.Sprintf("chart %q: %v", e.Chart, e.Err)
}

func (e *ChartRenderError) Unwrap() error {
	return e.Err
}

// ChartSpec is a declarative figure description handed to the rendering
// layer. The core never depends on anything the renderer returns.
type ChartSpec struct {
	Key      string   `json:"key"`
	Kind     string   `json:"kind"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	// Labels are display labels, truncated for axis space; FullLabels keep
	// the untruncated group names for hover text.
	Labels     []string  `json:"labels,omitempty"`
	FullLabels []string  `json:"full_labels,omitempty"`
	Values     []float64 `json:"values,omitempty"`
	Series     []Series  `json:"series,omitempty"`
	Points     []Point   `json:"points,omitempty"`
	Colors     []string  `json:"colors,omitempty"`
}

// Series is one named value set in a multi-series chart.
type Series struct {
	Name   string    `json:"name"`
	Color  string    `json:"color"`
	Values []float64 `json:"values"`
}

// Point is one marker in a scatter chart; ColorValue drives the color scale.
type Point struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	ColorValue float64 `json:"color_value"`
	Label      string  `json:"label"`
}

// BuildCharts assembles every chart spec for the view. A chart that fails
// is logged and omitted; the failure never aborts the remaining charts.
func BuildCharts(ds *models.Dataset, logger *slog.Logger) []ChartSpec {
	builders := []struct {
		key   string
		build func(*models.Dataset) (*ChartSpec, error)
	}{
		{"supplier_bar", SupplierBar},
		{"item_bar", ItemBar},
		{"monthly_trend", MonthlyTrend},
		{"cost_breakdown", CostBreakdown},
		{"supplier_donut", SupplierDonut},
		{"item_hbar", ItemHBar},
		{"discount_tax", DiscountTaxScatter},
		{"uom_bar", UOMBar},
	}

	var out []ChartSpec
	for _, b := range builders {
		spec, err := buildSafely(b.key, b.build, ds)
		if err != nil {
			logger.Warn("chart omitted", "chart", b.key, "error", err)
			continue
		}
		out = append(out, *spec)
	}
	return out
}

func buildSafely(key string, build func(*models.Dataset) (*ChartSpec, error), ds *models.Dataset) (spec *ChartSpec, err error) {
	defer func() {
		if r := recover(); r != nil {
			spec, err = nil, &ChartRenderError{Chart: key, Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	spec, err = build(ds)
	if err != nil {
		return nil, &ChartRenderError{Chart: key, Err: err}
	}
	return spec, nil
}

// SupplierBar is the top-8 suppliers by Net value.
func SupplierBar(ds *models.Dataset) (*ChartSpec, error) {
	groups := GroupBy(ds, GroupSupplier, false, 8)
	spec := &ChartSpec{
		Key:      "supplier_bar",
		Kind:     "bar",
		Title:    "Top Suppliers by Net Value",
		Subtitle: "Total net spend per vendor",
	}
	for _, g := range groups {
		spec.Labels = append(spec.Labels, truncate(g.Key, 22))
		spec.FullLabels = append(spec.FullLabels, g.Key)
		spec.Values = append(spec.Values, g.NetTotal)
	}
	return spec, nil
}

// ItemBar is the top-8 item descriptions by Net value.
func ItemBar(ds *models.Dataset) (*ChartSpec, error) {
	groups := GroupBy(ds, GroupItem, false, 8)
	spec := &ChartSpec{
		Key:      "item_bar",
		Kind:     "bar",
		Title:    "Top Items by Net Value",
		Subtitle: "Highest-value item descriptions",
	}
	for _, g := range groups {
		spec.Labels = append(spec.Labels, truncate(g.Key, 24))
		spec.FullLabels = append(spec.FullLabels, g.Key)
		spec.Values = append(spec.Values, g.NetTotal)
	}
	return spec, nil
}

// poDateFormats are the day-first layouts tried when bucketing PO dates.
var poDateFormats = []string{
	"02/01/2006", "2/1/2006", "02-01-2006", "2-1-2006",
	"02.01.2006", "2006-01-02",
}

// MonthlyTrend buckets Net by PO month. Records whose PO date does not
// parse are excluded; if none parse the chart fails with a render error.
func MonthlyTrend(ds *models.Dataset) (*ChartSpec, error) {
	sums := make(map[string]float64)
	for i := range ds.Records {
		rec := &ds.Records[i]
		t, ok := parsePODate(rec.PODate)
		if !ok {
			continue
		}
		sums[t.Format("2006-01")] += rec.Net
	}
	if len(sums) == 0 {
		return nil, fmt.Errorf("no parseable PO dates in view")
	}

	months := make([]string, 0, len(sums))
	for m := range sums {
		months = append(months, m)
	}
	sort.Strings(months)

	spec := &ChartSpec{
		Key:      "monthly_trend",
		Kind:     "line",
		Title:    "Monthly Spend Trend",
		Subtitle: "Net procurement value by PO month",
		Labels:   months,
	}
	for _, m := range months {
		spec.Values = append(spec.Values, sums[m])
	}
	return spec, nil
}

func parsePODate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range poDateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CostBreakdown stacks Material, Tax, Freight and Others per supplier for
// the top 8 suppliers by combined component total.
func CostBreakdown(ds *models.Dataset) (*ChartSpec, error) {
	groups := GroupBy(ds, GroupSupplier, false, 0)
	sort.SliceStable(groups, func(i, j int) bool {
		return combined(groups[i]) > combined(groups[j])
	})
	if len(groups) > 8 {
		groups = groups[:8]
	}

	spec := &ChartSpec{
		Key:      "cost_breakdown",
		Kind:     "stacked_bar",
		Title:    "Cost Breakdown by Supplier",
		Subtitle: "Material, Tax, Freight and Others stacked per vendor",
		Series: []Series{
			{Name: "Material", Color: "#0ea5e9"},
			{Name: "Tax", Color: "#f59e0b"},
			{Name: "Freight", Color: "#10b981"},
			{Name: "Others", Color: "#a78bfa"},
		},
	}
	for _, g := range groups {
		spec.Labels = append(spec.Labels, truncate(g.Key, 18))
		spec.FullLabels = append(spec.FullLabels, g.Key)
		spec.Series[0].Values = append(spec.Series[0].Values, g.MaterialTotal)
		spec.Series[1].Values = append(spec.Series[1].Values, g.TaxTotal)
		spec.Series[2].Values = append(spec.Series[2].Values, g.FreightTotal)
		spec.Series[3].Values = append(spec.Series[3].Values, g.OthersTotal)
	}
	return spec, nil
}

func combined(g Aggregate) float64 {
	return g.MaterialTotal + g.TaxTotal + g.FreightTotal + g.OthersTotal
}

// SupplierDonut is the spend-share donut over the top 10 suppliers.
func SupplierDonut(ds *models.Dataset) (*ChartSpec, error) {
	groups := GroupBy(ds, GroupSupplier, false, 10)
	spec := &ChartSpec{
		Key:      "supplier_donut",
		Kind:     "donut",
		Title:    "Vendor Spend Share",
		Subtitle: "Top 10 vendors by proportion of net spend",
		Colors:   Palette,
	}
	for _, g := range groups {
		spec.Labels = append(spec.Labels, g.Key)
		spec.FullLabels = append(spec.FullLabels, g.Key)
		spec.Values = append(spec.Values, g.NetTotal)
	}
	return spec, nil
}

// ItemHBar ranks the top 10 items as a horizontal bar, lowest first so the
// largest bar renders at the top.
func ItemHBar(ds *models.Dataset) (*ChartSpec, error) {
	groups := GroupBy(ds, GroupItem, false, 10)
	spec := &ChartSpec{
		Key:      "item_hbar",
		Kind:     "hbar",
		Title:    "Top Items Ranked",
		Subtitle: "Highest-value items by net amount",
	}
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		spec.Labels = append(spec.Labels, truncate(g.Key, 32))
		spec.FullLabels = append(spec.FullLabels, g.Key)
		spec.Values = append(spec.Values, g.NetTotal)
	}
	return spec, nil
}

// DiscountTaxScatter plots one marker per record, colored by Net.
func DiscountTaxScatter(ds *models.Dataset) (*ChartSpec, error) {
	spec := &ChartSpec{
		Key:      "discount_tax",
		Kind:     "scatter",
		Title:    "Discount vs Tax Analysis",
		Subtitle: "Each dot is one PO line, colored by Net value",
	}
	for i := range ds.Records {
		rec := &ds.Records[i]
		spec.Points = append(spec.Points, Point{
			X:          rec.Discount,
			Y:          rec.Tax,
			ColorValue: rec.Net,
			Label:      rec.Supplier,
		})
	}
	return spec, nil
}

// UOMBar groups Net by unit of measure.
func UOMBar(ds *models.Dataset) (*ChartSpec, error) {
	groups := GroupBy(ds, GroupUOM, false, 0)
	spec := &ChartSpec{
		Key:      "uom_bar",
		Kind:     "bar",
		Title:    "Spend by UOM",
		Subtitle: "Net value grouped by unit of measure",
	}
	for _, g := range groups {
		spec.Labels = append(spec.Labels, g.Key)
		spec.FullLabels = append(spec.FullLabels, g.Key)
		spec.Values = append(spec.Values, g.NetTotal)
	}
	return spec, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
