package commands

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/benchtable/tablegen/pkg/observability"
	"github.com/benchtable/tablegen/pkg/version"
)

var (
	verbose bool
	quiet   bool
)

// NewRootCommand builds the tablegen command tree: persistent
// --verbose/--quiet flags, a version subcommand, and the generate/dump
// subcommands. The CLI layer stays a thin adapter over internal/aggregate;
// argument parsing itself carries no pipeline logic.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "tablegen",
		Short: "tablegen aggregates benchmark result files into cross-tool comparison tables",
		Long: `tablegen loads one or more benchmark result files, reconciles their tasks,
extracts and types columns, computes statistics, and renders cross-tool
comparison tables and a diff view.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.String(),
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output")

	root.AddCommand(newGenerateCommand())
	root.AddCommand(newDumpCommand())
	root.AddCommand(newVersionCommand())

	return root
}

// cliLogger builds the slog.Logger used for one command invocation:
// --quiet raises the level to Warn, --verbose lowers it to Debug,
// otherwise Info. Wrapped in observability.NewTracingHandler the same way
// pkg/observability/init.go wires the ambient logger, so warnings emitted
// during a traced aggregate.Run carry trace/span correlation.
func cliLogger() *slog.Logger {
	level := slog.LevelInfo

	switch {
	case quiet:
		level = slog.LevelWarn
	case verbose:
		level = slog.LevelDebug
	}

	handler := observability.NewTracingHandler(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
		"tablegen", "", observability.ModeCLI,
	)

	return slog.New(handler)
}

// warnf prints a yellow warning to stderr, bypassing the structured logger
// for operator-facing CLI messages that aren't part of the pipeline's own
// warning taxonomy.
func warnf(format string, args ...any) {
	if quiet {
		return
	}

	color.New(color.FgYellow).Fprintf(os.Stderr, format, args...) //nolint:errcheck // best-effort diagnostic output
}
