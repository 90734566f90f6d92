// Command probebench times the probing map against builtin and concurrent
// maps using random insert, retrieve and remove rounds.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/homier/probingmap/internal/bench"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:          "probebench",
		Short:        "Time the probing map against baseline maps",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.config(cmd.Flags())
			if err != nil {
				return err
			}

			logger, err := newLogger(opts.verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			runner, err := bench.NewRunner(cfg, logger)
			if err != nil {
				return err
			}

			reports, err := runner.Run(cmd.Context())
			printReports(cmd, reports)

			return err
		},
	}

	opts.register(cmd.Flags())

	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

func printReports(cmd *cobra.Command, reports []bench.Report) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "TARGET\tOPS\tDURATION\tINSERTS\tHITS\tREMOVES\tSIZE\tCOUNT")
	for _, r := range reports {
		fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%d\t%d\t%d\t%d\n",
			r.Target, r.Ops, r.Duration, r.Inserts, r.Retrieves, r.Removes, r.Size, r.Count)
	}
}
