package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("artifact"), 0o644))
}

func TestLoadManifest_Defaults(t *testing.T) {
	dir := t.TempDir()

	m, err := LoadManifest(dir)
	require.NoError(t, err)

	model, scaler, encoders := m.ModelPaths()
	assert.Equal(t, filepath.Join(dir, "xgb_model.pkl"), model)
	assert.Equal(t, filepath.Join(dir, "scaler.pkl"), scaler)
	assert.Equal(t, filepath.Join(dir, "label_encoders.pkl"), encoders)
	assert.Equal(t, []string{"category", "city", "region", "profit", "discount"}, m.FeatureOrder())
}

func TestLoadManifest_Overrides(t *testing.T) {
	dir := t.TempDir()
	manifest := `
[artifacts]
model    = xgb_model_v2.pkl
encoders = encoders_v2.pkl

[model]
feature_order = category, region, discount
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "manifest.ini"), []byte(manifest), 0o644))

	m, err := LoadManifest(dir)
	require.NoError(t, err)

	model, scaler, encoders := m.ModelPaths()
	assert.Equal(t, filepath.Join(dir, "xgb_model_v2.pkl"), model)
	assert.Equal(t, filepath.Join(dir, "scaler.pkl"), scaler, "unset keys keep their defaults")
	assert.Equal(t, filepath.Join(dir, "encoders_v2.pkl"), encoders)
	assert.Equal(t, []string{"category", "region", "discount"}, m.FeatureOrder())
}

func TestManifest_Missing(t *testing.T) {
	dir := t.TempDir()
	m, err := LoadManifest(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"xgb_model.pkl", "scaler.pkl", "label_encoders.pkl"}, m.Missing())

	touch(t, dir, "xgb_model.pkl")
	touch(t, dir, "label_encoders.pkl")
	assert.Equal(t, []string{"scaler.pkl"}, m.Missing())

	touch(t, dir, "scaler.pkl")
	assert.Empty(t, m.Missing())
}

func TestLoadManifest_Malformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "manifest.ini"), []byte("[artifacts\nbroken"), 0o644))

	_, err := LoadManifest(dir)
	assert.Error(t, err)
}
