package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, ModeRestricted, cfg.Mode)
	assert.Equal(t, filepath.Join("data", "processed", "analytics.json"), cfg.AnalyticsPath())
	assert.Equal(t, filepath.Join("data", "processed", "model_metrics.json"), cfg.MetricsPath())
	assert.Equal(t, 30, cfg.ScoringTimeoutSeconds)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SALES_ATLAS_MODE", ModeFull)
	t.Setenv("SALES_ATLAS_PORT", "9090")
	t.Setenv("SALES_ATLAS_DATA_DIR", "/srv/atlas/data")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ModeFull, cfg.Mode)
	assert.Equal(t, "0.0.0.0:9090", cfg.Addr())
	assert.Equal(t, "/srv/atlas/data/analytics.json", cfg.AnalyticsPath())
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sales-atlas.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: full\npython_bin: /usr/bin/python3.12\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ModeFull, cfg.Mode)
	assert.Equal(t, "/usr/bin/python3.12", cfg.PythonBin)
}

func TestLoad_InvalidMode(t *testing.T) {
	t.Setenv("SALES_ATLAS_MODE", "hybrid")

	_, err := Load("")
	assert.ErrorContains(t, err, "invalid mode")
}
