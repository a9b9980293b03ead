package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"vendoriq/internal/analytics"
	"vendoriq/internal/format"
	"vendoriq/internal/middleware"
	"vendoriq/internal/query"
)

// AnalyticsHandlers serves KPI summaries, vendor/item rollups and chart
// specs over the filtered view.
type AnalyticsHandlers struct {
	logger *slog.Logger
}

// NewAnalyticsHandlers creates a new analytics handlers instance.
func NewAnalyticsHandlers(logger *slog.Logger) *AnalyticsHandlers {
	return &AnalyticsHandlers{logger: logger}
}

// Summary returns the KPI card values for the current view.
func (h *AnalyticsHandlers) Summary(c echo.Context) error {
	f, _, err := parseFilter(c)
	if err != nil {
		return err
	}
	snap := middleware.StoreFrom(c).Snapshot()
	s := analytics.Summarize(query.Apply(snap, f))

	return c.JSON(http.StatusOK, map[string]interface{}{
		"summary": s,
		"display": map[string]string{
			"total_net":        format.Abbrev(s.TotalNet),
			"total_material":   format.Abbrev(s.TotalMaterial),
			"total_tax":        format.Abbrev(s.TotalTax),
			"total_discount":   format.Abbrev(s.TotalDiscount),
			"unique_suppliers": strconv.Itoa(s.UniqueSuppliers),
		},
	})
}

// VendorSummary returns the per-supplier rollup. limit truncates the ranked
// list; order=asc flips to a bottom-N view.
func (h *AnalyticsHandlers) VendorSummary(c echo.Context) error {
	return h.groupSummary(c, analytics.GroupSupplier)
}

// ItemSummary returns the per-item-description rollup.
func (h *AnalyticsHandlers) ItemSummary(c echo.Context) error {
	return h.groupSummary(c, analytics.GroupItem)
}

func (h *AnalyticsHandlers) groupSummary(c echo.Context, groupCol string) error {
	f, _, err := parseFilter(c)
	if err != nil {
		return err
	}

	limit := 0
	if s := c.QueryParam("limit"); s != "" {
		limit, err = strconv.Atoi(s)
		if err != nil || limit < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid limit")
		}
	}
	ascending := c.QueryParam("order") == "asc"

	snap := middleware.StoreFrom(c).Snapshot()
	aggs := analytics.GroupBy(query.Apply(snap, f), groupCol, ascending, limit)

	display := make([]map[string]string, 0, len(aggs))
	for _, g := range aggs {
		display = append(display, map[string]string{
			"key":       g.Key,
			"records":   strconv.Itoa(g.Records),
			"net":       format.Full(g.NetTotal),
			"net_short": format.Abbrev(g.NetTotal),
			"material":  format.Full(g.MaterialTotal),
			"tax":       format.Full(g.TaxTotal),
			"discount":  format.Full(g.DiscountTotal),
			"freight":   format.Full(g.FreightTotal),
			"avg_rate":  format.Full(g.AvgRate),
			"share":     fmt.Sprintf("%.1f%%", g.Share),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"group_by": groupCol,
		"rows":     aggs,
		"display":  display,
	})
}

// Charts returns every chart spec that rendered for the current view.
// Individual chart failures are logged and omitted, never fatal.
func (h *AnalyticsHandlers) Charts(c echo.Context) error {
	f, _, err := parseFilter(c)
	if err != nil {
		return err
	}
	snap := middleware.StoreFrom(c).Snapshot()
	specs := analytics.BuildCharts(query.Apply(snap, f), h.logger)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"charts": specs,
	})
}
