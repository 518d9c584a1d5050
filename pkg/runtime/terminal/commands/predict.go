package commands

import (
	"github.com/spf13/cobra"

	"github.com/retail-tools/sales-atlas/pkg/models/domain"
	"github.com/retail-tools/sales-atlas/pkg/runtime/terminal/export"
	"github.com/retail-tools/sales-atlas/pkg/services/scoring"
)

type PredictCmd struct {
	request  domain.PredictionRequest
	scorer   scoring.Scorer
	reporter *export.Reporter
}

func NewPredictCmd(scorer scoring.Scorer, reporter *export.Reporter) *cobra.Command {
	pc := &PredictCmd{scorer: scorer, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Score a hypothetical sale",
		RunE:  pc.run,
	}

	cmd.Flags().IntVar(&pc.request.Category, "category", 0, "Category code")
	cmd.Flags().IntVar(&pc.request.SubCategory, "sub-category", 0, "Sub-category code")
	cmd.Flags().IntVar(&pc.request.City, "city", 0, "City code")
	cmd.Flags().IntVar(&pc.request.Region, "region", 0, "Region code")
	cmd.Flags().IntVar(&pc.request.State, "state", 0, "State code")
	cmd.Flags().Float64Var(&pc.request.Discount, "discount", 0, "Discount fraction (0.0-0.5)")
	cmd.Flags().IntVar(&pc.request.Month, "month", 1, "Calendar month (1-12)")
	cmd.Flags().IntVar(&pc.request.Year, "year", 2024, "Year")
	cmd.Flags().IntVar(&pc.request.DayOfWeek, "day-of-week", 0, "Day of week (0-6)")
	cmd.Flags().IntVar(&pc.request.IsWeekend, "weekend", 0, "Weekend flag (0 or 1)")
	cmd.Flags().Float64Var(&pc.request.ProfitMargin, "profit-margin", 0.2, "Profit margin fraction (0.05-0.5)")

	return cmd
}

func (pc *PredictCmd) run(cmd *cobra.Command, _ []string) error {
	result := pc.scorer.Score(cmd.Context(), pc.request)
	return pc.reporter.HandlePrediction(&result)
}
