package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"vendoriq/internal/analytics"
	"vendoriq/internal/export"
	"vendoriq/internal/middleware"
	"vendoriq/internal/models"
	"vendoriq/internal/query"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandlers serves CSV/XLSX downloads of the current view and the
// schema template. Exports carry raw numeric precision, not display strings.
type ExportHandlers struct {
	logger *slog.Logger
}

// NewExportHandlers creates a new export handlers instance.
func NewExportHandlers(logger *slog.Logger) *ExportHandlers {
	return &ExportHandlers{logger: logger}
}

// RecordsCSV downloads the filtered view as delimited text.
func (h *ExportHandlers) RecordsCSV(c echo.Context) error {
	view, err := h.filteredView(c)
	if err != nil {
		return err
	}
	data, err := export.MarshalCSV(view)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Export failed")
	}
	return attachment(c, "text/csv", stampName("vendor_data", "csv"), data)
}

// RecordsXLSX downloads the filtered view as a workbook.
func (h *ExportHandlers) RecordsXLSX(c echo.Context) error {
	view, err := h.filteredView(c)
	if err != nil {
		return err
	}
	data, err := export.MarshalXLSX(view)
	if err != nil {
		h.logger.Error("xlsx export failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Export failed")
	}
	return attachment(c, xlsxMIME, stampName("vendor_data", "xlsx"), data)
}

// VendorsCSV downloads the full per-vendor rollup.
func (h *ExportHandlers) VendorsCSV(c echo.Context) error {
	view, err := h.filteredView(c)
	if err != nil {
		return err
	}
	aggs := analytics.GroupBy(view, analytics.GroupSupplier, false, 0)
	data, err := export.VendorSummaryCSV(aggs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Export failed")
	}
	return attachment(c, "text/csv", stampName("vendor_summary", "csv"), data)
}

// Template downloads the canonical header row plus one example data row.
func (h *ExportHandlers) Template(c echo.Context) error {
	return attachment(c, "text/csv", "vendor_template.csv", export.TemplateCSV())
}

func (h *ExportHandlers) filteredView(c echo.Context) (*models.Dataset, error) {
	f, sortKey, err := parseFilter(c)
	if err != nil {
		return nil, err
	}
	snap := middleware.StoreFrom(c).Snapshot()
	view := query.Apply(snap, f)
	query.SortRecords(view.Records, sortKey)
	return view, nil
}

func attachment(c echo.Context, mime, name string, data []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, mime, data)
}

func stampName(prefix, ext string) string {
	return fmt.Sprintf("%s_%s.%s", prefix, time.Now().Format("20060102"), ext)
}
