package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"vendoriq/internal/analytics"
	"vendoriq/internal/format"
	"vendoriq/internal/middleware"
	"vendoriq/internal/query"
)

// RecordHandlers serves the filtered records view.
type RecordHandlers struct {
	logger *slog.Logger
}

// NewRecordHandlers creates a new record handlers instance.
func NewRecordHandlers(logger *slog.Logger) *RecordHandlers {
	return &RecordHandlers{logger: logger}
}

// List applies the filter specification and returns the view: raw records
// for machine use plus display rows with money formatting. The meta block
// mirrors the portal's "Showing X of Y" line, where Y counts the records
// passing the global filters and X additionally passes the in-table ones.
func (h *RecordHandlers) List(c echo.Context) error {
	f, sortKey, err := parseFilter(c)
	if err != nil {
		return err
	}

	snap := middleware.StoreFrom(c).Snapshot()
	globalView := query.Apply(snap, baseFilter(f))
	tableView := query.Apply(globalView, f)
	query.SortRecords(tableView.Records, sortKey)

	netTotal := analytics.Summarize(tableView).TotalNet
	return c.JSON(http.StatusOK, map[string]interface{}{
		"meta": map[string]interface{}{
			"showing":           tableView.Len(),
			"total":             globalView.Len(),
			"net_total":         netTotal,
			"net_total_display": format.Abbrev(netTotal),
		},
		"extra_columns": tableView.ExtraColumns,
		"records":       tableView.Records,
		"display":       displayRows(tableView),
	})
}
