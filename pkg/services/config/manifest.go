package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

const manifestFile = "manifest.ini"

// Artifact file names the training pipeline writes when no manifest says
// otherwise.
const (
	defaultModelFile    = "xgb_model.pkl"
	defaultScalerFile   = "scaler.pkl"
	defaultEncodersFile = "label_encoders.pkl"
)

// defaultFeatureOrder is the canonical positional layout agreed with the
// training job: Category, City, Region, Profit, Discount.
var defaultFeatureOrder = []string{"category", "city", "region", "profit", "discount"}

// Manifest locates the trained-model artifacts. The training pipeline may
// drop a models/manifest.ini to rename artifacts or change the feature order
// on retrain; without one the well-known defaults apply.
//
// Example manifest:
//
//	[artifacts]
//	model    = xgb_model_v2.pkl
//	scaler   = scaler_v2.pkl
//	encoders = label_encoders_v2.pkl
//
//	[model]
//	feature_order = category, city, region, profit, discount
type Manifest struct {
	dir          string
	model        string
	scaler       string
	encoders     string
	featureOrder []string
}

func LoadManifest(modelsDir string) (*Manifest, error) {
	m := &Manifest{
		dir:          modelsDir,
		model:        defaultModelFile,
		scaler:       defaultScalerFile,
		encoders:     defaultEncodersFile,
		featureOrder: defaultFeatureOrder,
	}

	path := filepath.Join(modelsDir, manifestFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return m, nil
	}

	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load artifact manifest: %w", err)
	}

	artifacts := cfg.Section("artifacts")
	if v := artifacts.Key("model").String(); v != "" {
		m.model = v
	}
	if v := artifacts.Key("scaler").String(); v != "" {
		m.scaler = v
	}
	if v := artifacts.Key("encoders").String(); v != "" {
		m.encoders = v
	}

	if v := cfg.Section("model").Key("feature_order").String(); v != "" {
		order := make([]string, 0, len(defaultFeatureOrder))
		for _, name := range strings.Split(v, ",") {
			order = append(order, strings.TrimSpace(name))
		}
		m.featureOrder = order
	}

	return m, nil
}

// Missing returns the names of required artifacts absent from the models
// directory, in check order: model, scaler, encoders.
func (m *Manifest) Missing() []string {
	var missing []string
	for _, name := range []string{m.model, m.scaler, m.encoders} {
		if _, err := os.Stat(filepath.Join(m.dir, name)); err != nil {
			missing = append(missing, name)
		}
	}
	return missing
}

func (m *Manifest) ModelPaths() (model, scaler, encoders string) {
	return filepath.Join(m.dir, m.model),
		filepath.Join(m.dir, m.scaler),
		filepath.Join(m.dir, m.encoders)
}

func (m *Manifest) FeatureOrder() []string {
	return append([]string(nil), m.featureOrder...)
}
