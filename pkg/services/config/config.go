package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Deployment modes. Restricted deployments cannot host the Python scoring
// runtime and fall back to the heuristic estimator.
const (
	ModeFull       = "full"
	ModeRestricted = "restricted"
)

// Config holds the application settings, resolved from defaults, an optional
// config file and SALES_ATLAS_* environment variables.
type Config struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`

	Mode string `mapstructure:"mode"`

	DataDir    string `mapstructure:"data_dir"`
	ModelsDir  string `mapstructure:"models_dir"`
	PythonBin  string `mapstructure:"python_bin"`
	ScriptPath string `mapstructure:"script_path"`

	ScoringTimeoutSeconds int    `mapstructure:"scoring_timeout_seconds"`
	HistoryDBPath         string `mapstructure:"history_db_path"`

	LogsDir        string `mapstructure:"logs_dir"`
	LogsMaxSizeMB  int    `mapstructure:"logs_max_size_mb"`
	LogsMaxBackups int    `mapstructure:"logs_max_backups"`
	LogsMaxAgeDays int    `mapstructure:"logs_max_age_days"`
}

// Load resolves the configuration. path may be empty; when set it points to a
// viper-readable config file whose values sit between the defaults and the
// environment.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", "8080")
	v.SetDefault("mode", ModeRestricted)
	v.SetDefault("data_dir", "data/processed")
	v.SetDefault("models_dir", "models")
	v.SetDefault("python_bin", "python3")
	v.SetDefault("script_path", "scripts/score.py")
	v.SetDefault("scoring_timeout_seconds", 30)
	v.SetDefault("history_db_path", "sales-atlas.db")
	v.SetDefault("logs_dir", "logs")
	v.SetDefault("logs_max_size_mb", 20)
	v.SetDefault("logs_max_backups", 5)
	v.SetDefault("logs_max_age_days", 30)

	v.SetEnvPrefix("SALES_ATLAS")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Mode != ModeFull && c.Mode != ModeRestricted {
		return fmt.Errorf("invalid mode %q: must be %q or %q", c.Mode, ModeFull, ModeRestricted)
	}
	if c.ScoringTimeoutSeconds <= 0 {
		return fmt.Errorf("scoring_timeout_seconds must be positive, got %d", c.ScoringTimeoutSeconds)
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func (c *Config) AnalyticsPath() string {
	return filepath.Join(c.DataDir, "analytics.json")
}

func (c *Config) MetricsPath() string {
	return filepath.Join(c.DataDir, "model_metrics.json")
}

func (c *Config) ScoringTimeout() time.Duration {
	return time.Duration(c.ScoringTimeoutSeconds) * time.Second
}
