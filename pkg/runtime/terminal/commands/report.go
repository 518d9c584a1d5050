package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/retail-tools/sales-atlas/pkg/runtime/terminal/export"
	"github.com/retail-tools/sales-atlas/pkg/services/analytics"
)

type ReportCmd struct {
	metrics  bool
	explorer analytics.Explorer
	reporter *export.Reporter
}

func NewReportCmd(explorer analytics.Explorer, reporter *export.Reporter) *cobra.Command {
	rc := &ReportCmd{explorer: explorer, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the precomputed sales analytics report",
		RunE:  rc.run,
	}

	cmd.Flags().BoolVar(&rc.metrics, "metrics", false, "Print model training metrics instead of the sales report")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	if rc.metrics {
		metrics, err := rc.explorer.GetModelMetrics(ctx)
		if err != nil {
			return fmt.Errorf("failed to load model metrics: %w", err)
		}
		return rc.reporter.HandleMetrics(metrics)
	}

	snapshot, err := rc.explorer.GetSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to load analytics: %w", err)
	}
	return rc.reporter.HandleSnapshot(snapshot)
}
