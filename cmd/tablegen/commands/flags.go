// Package commands implements CLI command handlers for tablegen.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/benchtable/tablegen/internal/aggregate"
	"github.com/benchtable/tablegen/internal/reconcile"
)

// inputFlags holds the flags describing what to load and how to
// reconcile it, shared by the generate and dump subcommands.
type inputFlags struct {
	tableDefPath                     string
	ignoreErroneousBenchmarks        bool
	ignoreFlappingTimeoutRegressions bool
	common                           bool
	allColumns                       bool
	concurrency                      int
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.tableDefPath, "xml", "x", "", "table-definition XML file")
	cmd.Flags().BoolVar(&f.ignoreErroneousBenchmarks, "ignore-erroneous-benchmarks", false, "drop result files reporting a top-level error instead of failing")
	cmd.Flags().BoolVar(&f.ignoreFlappingTimeoutRegressions, "ignore-flapping-timeout-regressions", false, "don't count a TIMEOUT-to-TIMEOUT status change as a regression")
	cmd.Flags().BoolVarP(&f.common, "common", "c", false, "keep only tasks present in every run set (intersection mode)")
	cmd.Flags().BoolVar(&f.allColumns, "all-columns", false, "disable hidden-column suppression during discovery")
	cmd.Flags().IntVar(&f.concurrency, "concurrency", 0, "bound the parallel driver's worker pool (0 uses its default)")
}

func (f *inputFlags) options(args []string, logger *slog.Logger) aggregate.Options {
	mode := reconcile.Union
	if f.common {
		mode = reconcile.Intersection
	}

	return aggregate.Options{
		Inputs:                           args,
		TableDefPath:                     f.tableDefPath,
		IgnoreErroneousBenchmarks:        f.ignoreErroneousBenchmarks,
		Mode:                             mode,
		AllColumns:                       f.allColumns,
		IgnoreFlappingTimeoutRegressions: f.ignoreFlappingTimeoutRegressions,
		Concurrency:                      f.concurrency,
		Scorer:                           defaultScorer{},
		Logger:                           logger,
	}
}
