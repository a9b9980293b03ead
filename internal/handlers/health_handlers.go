package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"

	"vendoriq/internal/dataset"
)

var startTime = time.Now()

// HealthHandlers handles health check and monitoring endpoints.
type HealthHandlers struct {
	version  string
	sessions *dataset.Sessions
}

// NewHealthHandlers creates a new health handlers instance.
func NewHealthHandlers(version string, sessions *dataset.Sessions) *HealthHandlers {
	return &HealthHandlers{version: version, sessions: sessions}
}

// HealthStatus represents the overall health status.
type HealthStatus struct {
	Status     string `json:"status"`
	Timestamp  string `json:"timestamp"`
	Uptime     string `json:"uptime"`
	Version    string `json:"version"`
	Sessions   int    `json:"sessions"`
	Goroutines int    `json:"goroutines"`
}

// HealthCheck reports liveness. The service holds no external backends, so
// a running process is a healthy process.
func (h *HealthHandlers) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthStatus{
		Status:     "healthy",
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Uptime:     time.Since(startTime).Round(time.Second).String(),
		Version:    h.version,
		Sessions:   h.sessions.Count(),
		Goroutines: runtime.NumGoroutine(),
	})
}
