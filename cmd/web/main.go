package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/retail-tools/sales-atlas/pkg/server"
	"github.com/retail-tools/sales-atlas/pkg/services/analytics"
	"github.com/retail-tools/sales-atlas/pkg/services/config"
	"github.com/retail-tools/sales-atlas/pkg/services/scoring"
	"github.com/retail-tools/sales-atlas/pkg/store/duckdb"
	"github.com/retail-tools/sales-atlas/pkg/store/duckdb/history"
	"github.com/retail-tools/sales-atlas/pkg/store/snapshot"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Sales Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a config file (defaults and SALES_ATLAS_* env vars apply without one)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := zerolog.New(logWriter(cfg)).With().Timestamp().Logger()

	snapshotStore, err := snapshot.NewStore(snapshot.Settings{
		AnalyticsPath: cfg.AnalyticsPath(),
		MetricsPath:   cfg.MetricsPath(),
	})
	if err != nil {
		return fmt.Errorf("failed to create snapshot store: %w", err)
	}

	manifest, err := config.LoadManifest(cfg.ModelsDir)
	if err != nil {
		return fmt.Errorf("failed to load artifact manifest: %w", err)
	}

	scorer, err := scoring.NewScorer(scoring.Settings{
		Mode:      cfg.Mode,
		Artifacts: manifest,
		Executor:  scoring.NewPythonExecutor(cfg.PythonBin, cfg.ScriptPath),
		Timeout:   cfg.ScoringTimeout(),
	})
	if err != nil {
		return fmt.Errorf("failed to create scorer: %w", err)
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: cfg.HistoryDBPath})
	if err != nil {
		return fmt.Errorf("failed to create DuckDB instance: %w", err)
	}

	historyStore, err := history.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create history store: %w", err)
	}

	logger.Info().Str("mode", cfg.Mode).Msg("scoring mode selected")

	api := server.NewWebAPI(server.Config{
		Addr: cfg.Addr(),
		Dependencies: server.Dependencies{
			Analytics: analytics.NewExplorer(snapshotStore),
			Scorer:    scorer,
			History:   historyStore,
			Logger:    logger,
		},
	})

	return api.Start()
}

// logWriter mirrors log lines to stdout and a size-rotated file.
func logWriter(cfg *config.Config) io.Writer {
	return io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   filepath.Join(cfg.LogsDir, "sales-atlas.log"),
		MaxSize:    cfg.LogsMaxSizeMB,
		MaxBackups: cfg.LogsMaxBackups,
		MaxAge:     cfg.LogsMaxAgeDays,
	})
}
