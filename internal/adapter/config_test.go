package adapter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "https://pokeapi.co/api/v2", cfg.Catalog.BaseURL)
	assert.Equal(t, 100, cfg.Catalog.PageSize)
	assert.Equal(t, 15*time.Second, cfg.Catalog.Timeout)
	assert.Equal(t, 0, cfg.Catalog.RequestsPerSecond)
	assert.Equal(t, 5, cfg.UI.PrefetchThreshold)
	assert.True(t, cfg.UI.ShowClock)
	assert.Equal(t, "INFO", cfg.Logging.Level)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
catalog:
  base_url: http://localhost:9000/api/v2
  page_size: 50
  timeout: 3s
ui:
  show_clock: false
`), 0644))

	t.Setenv("POKETEST_CATALOG_REQUESTS_PER_SECOND", "4")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/api/v2", cfg.Catalog.BaseURL)
	assert.Equal(t, 50, cfg.Catalog.PageSize)
	assert.Equal(t, 3*time.Second, cfg.Catalog.Timeout)
	assert.Equal(t, 4, cfg.Catalog.RequestsPerSecond)
	assert.False(t, cfg.UI.ShowClock)
	// Unset keys keep their defaults
	assert.Equal(t, 5, cfg.UI.PrefetchThreshold)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"relative base url", func(c *Config) { c.Catalog.BaseURL = "pokeapi.co" }},
		{"zero page size", func(c *Config) { c.Catalog.PageSize = 0 }},
		{"zero timeout", func(c *Config) { c.Catalog.Timeout = 0 }},
		{"negative rate", func(c *Config) { c.Catalog.RequestsPerSecond = -1 }},
		{"negative threshold", func(c *Config) { c.UI.PrefetchThreshold = -2 }},
	}
	require.NoError(t, DefaultConfig().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Catalog.PageSize = 20
	cfg.Catalog.Timeout = 7 * time.Second
	cfg.Logging.Level = "DEBUG"
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
