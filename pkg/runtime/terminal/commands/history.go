package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/retail-tools/sales-atlas/pkg/store/duckdb/history"
)

type HistoryCmd struct {
	limit int
	stats bool
	store history.Store
}

func NewHistoryCmd(store history.Store) *cobra.Command {
	hc := &HistoryCmd{store: store}
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent predictions",
		RunE:  hc.run,
	}

	cmd.Flags().IntVar(&hc.limit, "limit", 20, "Number of records to show")
	cmd.Flags().BoolVar(&hc.stats, "stats", false, "Show aggregate stats instead of records")

	return cmd
}

func (hc *HistoryCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if hc.store == nil {
		return fmt.Errorf("prediction history is not enabled")
	}

	if hc.stats {
		stats, err := hc.store.GetStats(ctx)
		if err != nil {
			return fmt.Errorf("failed to load prediction stats: %w", err)
		}
		fmt.Fprintf(out, "Recorded predictions: %d\n", stats.RecordsCount)
		if stats.LastPredictionAt != nil {
			fmt.Fprintf(out, "Last prediction: %s\n", stats.LastPredictionAt.Format("2006-01-02 15:04:05"))
		}
		return nil
	}

	records, err := hc.store.GetRecent(ctx, hc.limit)
	if err != nil {
		return fmt.Errorf("failed to load prediction history: %w", err)
	}

	if len(records) == 0 {
		fmt.Fprintln(out, "No predictions recorded yet.")
		return nil
	}

	for _, rec := range records {
		fmt.Fprintf(out, "%s  %-20s  prediction=%.2f  success=%t\n",
			rec.CreatedAt.Format("2006-01-02 15:04"), rec.Mode, rec.Prediction, rec.Success)
	}
	return nil
}
