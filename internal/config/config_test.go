package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "10M", cfg.MaxUploadSize)
	assert.Equal(t, "vendoriq_session", cfg.SessionCookie)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_COOKIE", "custom_session")
	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "custom_session", cfg.SessionCookie)
}

func TestValidate(t *testing.T) {
	cfg := Load()
	assert.NoError(t, cfg.Validate())

	cfg.Port = "not-a-port"
	err := cfg.Validate()
	require.Error(t, err)

	var invalid *InvalidConfigError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "PORT", invalid.Field)
}
