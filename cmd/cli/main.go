package main

import (
	"fmt"
	"os"

	"github.com/retail-tools/sales-atlas/pkg/runtime/terminal"
	"github.com/retail-tools/sales-atlas/pkg/services/analytics"
	"github.com/retail-tools/sales-atlas/pkg/services/config"
	"github.com/retail-tools/sales-atlas/pkg/services/scoring"
	"github.com/retail-tools/sales-atlas/pkg/store/duckdb"
	"github.com/retail-tools/sales-atlas/pkg/store/duckdb/history"
	"github.com/retail-tools/sales-atlas/pkg/store/snapshot"
)

func main() {
	cli, err := buildCLI()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func buildCLI() (*terminal.CLI, error) {
	cfg, err := config.Load(os.Getenv("SALES_ATLAS_CONFIG"))
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	snapshotStore, err := snapshot.NewStore(snapshot.Settings{
		AnalyticsPath: cfg.AnalyticsPath(),
		MetricsPath:   cfg.MetricsPath(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot store: %w", err)
	}

	manifest, err := config.LoadManifest(cfg.ModelsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load artifact manifest: %w", err)
	}

	scorer, err := scoring.NewScorer(scoring.Settings{
		Mode:      cfg.Mode,
		Artifacts: manifest,
		Executor:  scoring.NewPythonExecutor(cfg.PythonBin, cfg.ScriptPath),
		Timeout:   cfg.ScoringTimeout(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create scorer: %w", err)
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: cfg.HistoryDBPath})
	if err != nil {
		return nil, fmt.Errorf("failed to create DuckDB instance: %w", err)
	}

	historyStore, err := history.NewStore(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create history store: %w", err)
	}

	return terminal.NewCLI(terminal.Options{
		Analytics: analytics.NewExplorer(snapshotStore),
		Scorer:    scorer,
		History:   historyStore,
		Output:    os.Stdout,
	}), nil
}
