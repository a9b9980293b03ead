package main

import (
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"vendoriq/internal/config"
	"vendoriq/internal/dataset"
	"vendoriq/internal/handlers"
	"vendoriq/internal/middleware"
)

const version = "1.0.0"

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	// Session registry: one in-memory dataset store per session cookie.
	sessions := dataset.NewSessions()
	sessionMiddleware := middleware.NewSessionMiddleware(sessions, cfg.SessionCookie)

	// Create handlers
	healthHandlers := handlers.NewHealthHandlers(version, sessions)
	datasetHandlers := handlers.NewDatasetHandlers(logger)
	recordHandlers := handlers.NewRecordHandlers(logger)
	analyticsHandlers := handlers.NewAnalyticsHandlers(logger)
	exportHandlers := handlers.NewExportHandlers(logger)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())
	e.Use(echoMiddleware.BodyLimit(cfg.MaxUploadSize))

	// Health endpoint (no session required)
	e.GET("/health", healthHandlers.HealthCheck)

	// API routes: every view endpoint operates on the session's dataset.
	v1 := e.Group("/v1")
	v1.Use(sessionMiddleware.Resolve())

	v1.POST("/dataset/upload", datasetHandlers.Upload)
	v1.POST("/dataset/sample", datasetHandlers.LoadSample)
	v1.DELETE("/dataset", datasetHandlers.Clear)
	v1.GET("/dataset", datasetHandlers.Info)

	v1.GET("/records", recordHandlers.List)

	v1.GET("/summary", analyticsHandlers.Summary)
	v1.GET("/vendors/summary", analyticsHandlers.VendorSummary)
	v1.GET("/items/summary", analyticsHandlers.ItemSummary)
	v1.GET("/analytics/charts", analyticsHandlers.Charts)

	v1.GET("/export/records.csv", exportHandlers.RecordsCSV)
	v1.GET("/export/records.xlsx", exportHandlers.RecordsXLSX)
	v1.GET("/export/vendors.csv", exportHandlers.VendorsCSV)
	v1.GET("/template.csv", exportHandlers.Template)

	logger.Info("starting server", "port", cfg.Port, "version", version)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

func logLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
