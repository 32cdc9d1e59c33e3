package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir mirrors t.Chdir (Go 1.24+), unavailable on the Go toolchain in use.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/Drop-in.json", cfg.Data.SessionsSource)
	assert.Equal(t, "data/Locations.json", cfg.Data.LocationsSource)
	assert.Equal(t, "data/Facilities.geojson", cfg.Data.FacilitiesSource)
	assert.Empty(t, cfg.Data.TaxonomyPath)
	assert.Equal(t, 30, cfg.Data.TimeoutSecs)
	assert.Equal(t, 3, cfg.Data.MaxRetries)
	assert.Equal(t, "Toronto", cfg.Display.City)
	assert.Equal(t, "ON", cfg.Display.Province)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	body := `
data:
  sessions_source: https://example.org/dropin.json
  taxonomy_path: taxonomy.yaml
display:
  city: Ottawa
server:
  port: 9090
log:
  level: debug
  format: console
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://example.org/dropin.json", cfg.Data.SessionsSource)
	assert.Equal(t, "taxonomy.yaml", cfg.Data.TaxonomyPath)
	assert.Equal(t, "Ottawa", cfg.Display.City)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Unset keys keep their defaults.
	assert.Equal(t, "data/Locations.json", cfg.Data.LocationsSource)
	assert.Equal(t, "ON", cfg.Display.Province)
}

func TestLoadFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DROPIN_SERVER_PORT", "7777")
	t.Setenv("DROPIN_DISPLAY_CITY", "Hamilton")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7777, cfg.Server.Port)
	assert.Equal(t, "Hamilton", cfg.Display.City)
}

func TestInitLogger(t *testing.T) {
	assert.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	assert.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))
	assert.Error(t, InitLogger(LogConfig{Level: "shouty", Format: "json"}))
}
