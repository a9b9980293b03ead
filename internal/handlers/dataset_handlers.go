package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"vendoriq/internal/ingest"
	"vendoriq/internal/middleware"
	"vendoriq/internal/query"
	"vendoriq/internal/sample"
)

// DatasetHandlers handles upload, seed and lifecycle requests against the
// session's dataset store.
type DatasetHandlers struct {
	logger *slog.Logger
}

// NewDatasetHandlers creates a new dataset handlers instance.
func NewDatasetHandlers(logger *slog.Logger) *DatasetHandlers {
	return &DatasetHandlers{logger: logger}
}

// Upload accepts a multipart CSV/TXT/XLSX file and, depending on mode,
// previews it or merges it into the store. A file that cannot be parsed as
// a table contributes zero records and leaves the store untouched.
func (h *DatasetHandlers) Upload(c echo.Context) error {
	store := middleware.StoreFrom(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing file upload")
	}
	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot open file upload")
	}
	defer src.Close()

	mode := c.FormValue("mode")
	if mode == "" {
		mode = "preview"
	}

	parsed, err := ingest.ParseFile(fileHeader.Filename, src)
	if err != nil {
		var readErr *ingest.FileReadError
		if errors.As(err, &readErr) {
			h.logger.Error("file read failed", "file", fileHeader.Filename, "error", readErr.Err)
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "Cannot read file as a table")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Upload failed")
	}

	switch mode {
	case "preview":
		// No mutation; the caller decides append or replace next.
	case "append":
		store.Append(parsed)
	case "replace":
		store.Replace(parsed)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid mode: must be 'preview', 'append' or 'replace'")
	}

	h.logger.Info("upload processed", "file", fileHeader.Filename, "mode", mode, "rows", parsed.Len())
	return c.JSON(http.StatusOK, map[string]interface{}{
		"file":          fileHeader.Filename,
		"mode":          mode,
		"rows":          parsed.Len(),
		"total_records": store.Len(),
		"extra_columns": parsed.ExtraColumns,
	})
}

// LoadSample seeds the store with the deterministic demo dataset.
func (h *DatasetHandlers) LoadSample(c echo.Context) error {
	store := middleware.StoreFrom(c)

	mode := c.QueryParam("mode")
	if mode == "" {
		mode = "replace"
	}

	ds := sample.Dataset()
	switch mode {
	case "append":
		store.Append(ds)
	case "replace":
		store.Replace(ds)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid mode: must be 'append' or 'replace'")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"mode":          mode,
		"rows":          ds.Len(),
		"total_records": store.Len(),
	})
}

// Clear resets the session's dataset.
func (h *DatasetHandlers) Clear(c echo.Context) error {
	middleware.StoreFrom(c).Clear()
	return c.NoContent(http.StatusNoContent)
}

// Info reports the store's shape for populating filter widgets: record
// count, distinct suppliers and the Net bounds for the range slider.
func (h *DatasetHandlers) Info(c echo.Context) error {
	snap := middleware.StoreFrom(c).Snapshot()
	netMin, netMax := query.NetBounds(snap)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"records":       snap.Len(),
		"suppliers":     query.Suppliers(snap),
		"net_min":       netMin,
		"net_max":       netMax,
		"extra_columns": snap.ExtraColumns,
	})
}
