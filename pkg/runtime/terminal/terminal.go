package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/retail-tools/sales-atlas/pkg/runtime/terminal/commands"
	"github.com/retail-tools/sales-atlas/pkg/runtime/terminal/export"
	"github.com/retail-tools/sales-atlas/pkg/services/analytics"
	"github.com/retail-tools/sales-atlas/pkg/services/scoring"
	"github.com/retail-tools/sales-atlas/pkg/store/duckdb/history"
)

// CLI represents the command-line interface
type CLI struct {
	analytics analytics.Explorer
	scorer    scoring.Scorer
	history   history.Store
	reporter  *export.Reporter
	rootCmd   *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Analytics analytics.Explorer
	Scorer    scoring.Scorer
	History   history.Store
	Output    io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		analytics: opts.Analytics,
		scorer:    opts.Scorer,
		history:   opts.History,
		reporter:  export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sales-atlas",
		Short: "Retail sales analytics tool",
	}

	cmd.AddCommand(commands.NewReportCmd(cli.analytics, cli.reporter))
	cmd.AddCommand(commands.NewPredictCmd(cli.scorer, cli.reporter))
	cmd.AddCommand(commands.NewHistoryCmd(cli.history))

	return cmd
}
