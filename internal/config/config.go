// Package config loads service configuration from the environment.
package config

import (
	"os"
	"strconv"
)

type Config struct {
	// HTTP server
	Port string

	// Upload limit handed to the echo body-limit middleware, e.g. "10M".
	MaxUploadSize string

	// Session cookie name for the per-session dataset store.
	SessionCookie string

	// Logging
	LogLevel string
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		MaxUploadSize: getEnv("MAX_UPLOAD_SIZE", "10M"),
		SessionCookie: getEnv("SESSION_COOKIE", "vendoriq_session"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
}

// Validate reports the first configuration field that is unusable.
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return &InvalidConfigError{Field: "PORT", Value: c.Port}
	}
	return nil
}

// InvalidConfigError names a configuration field that failed validation.
type InvalidConfigError struct {
	Field string
	Value string
}

func (e *InvalidConfigError) Error() string {
	return "invalid configuration: " + e.Field + "=" + e.Value
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
