package config_test

import (
	"homoglyph/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, int64(65536), cfg.HTTP.MaxBodyBytes)
	require.Equal(t, "data/homoglyph_map.json", cfg.Table.MapPath)
	require.Equal(t, "data/char_codes.txt", cfg.Table.CodesPath)
	require.Equal(t, 20, cfg.Generator.DefaultMaxResults)
	require.Equal(t, 50, cfg.Generator.AttemptFactor)
	require.Equal(t, 6, cfg.Shortener.CodeLength)
	require.False(t, cfg.Shortener.Enabled)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
logLevel: warn
http:
  addr: ":9090"
  allowedOrigin: "https://example.com"
generator:
  maxResultsLimit: 50
shortener:
  enabled: true
  maxTtl: 24h
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, "https://example.com", cfg.HTTP.AllowedOrigin)
	require.Equal(t, 50, cfg.Generator.MaxResultsLimit)
	require.True(t, cfg.Shortener.Enabled)
	require.Equal(t, 24*time.Hour, cfg.Shortener.MaxTTL)
	// untouched keys keep their defaults
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("http:\n  addr: \":9090\"\n"), 0o600))
	t.Setenv("HTTP_ADDR", ":7070")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, ":7070", cfg.HTTP.Addr)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}
