// ABOUTME: Tests for environment-driven configuration
// ABOUTME: Checks defaults and KINDRED_ overrides
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8787", cfg.APIBaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Debug)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("KINDRED_API_BASE_URL", "https://api.kindred.example")
	t.Setenv("KINDRED_DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://api.kindred.example", cfg.APIBaseURL)
	assert.True(t, cfg.Debug)
}
