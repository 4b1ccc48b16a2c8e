package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benchtable/tablegen/internal/aggregate"
)

func newGenerateCommand() *cobra.Command {
	var (
		in             inputFlags
		outputPath     string
		name           string
		formats        []string
		noDiff         bool
		correctOnly    bool
		collapseHeader bool
		offline        bool
		show           bool
	)

	cmd := &cobra.Command{
		Use:   "generate [flags] result-file...",
		Short: "Aggregate result files into cross-tool comparison tables",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cliLogger()

			opts := in.options(args, logger)
			opts.NoDiff = noDiff
			opts.CorrectOnly = correctOnly
			opts.CollapseHeader = collapseHeader

			// --offline/--show are accepted for compatibility but stay
			// no-ops: fetching a remote resource or opening a browser is
			// outside this CLI's job of assembling tables.
			if offline {
				warnf("tablegen: --offline has no effect; no remote resources are ever fetched\n")
			}

			if show {
				warnf("tablegen: --show has no effect; opening a browser is outside tablegen's scope\n")
			}

			result, err := aggregate.Run(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}

			return aggregate.Emit(result, aggregate.EmitOptions{
				OutputPath:      outputPath,
				Name:            name,
				Formats:         formats,
				SingleInputFile: in.tableDefPath == "" && len(args) == 1,
				Writer:          cmd.OutOrStdout(),
			})
		},
	}

	in.register(cmd)
	cmd.Flags().StringVarP(&outputPath, "outputpath", "o", ".", `output directory, or "-" to write to stdout`)
	cmd.Flags().StringVarP(&name, "name", "n", "results", "output base name")
	cmd.Flags().StringSliceVarP(&formats, "format", "f", []string{"html", "csv"}, "render format(s): html, csv (repeatable)")
	cmd.Flags().BoolVar(&noDiff, "no-diff", false, "skip the diff-table computation")
	cmd.Flags().BoolVar(&correctOnly, "correct-only", false, "narrow statistics to the correct-only row set")
	cmd.Flags().BoolVar(&collapseHeader, "collapse-header", true, "collapse adjacent-equal header cells")
	cmd.Flags().BoolVar(&offline, "offline", false, "accepted for compatibility; tablegen never fetches remote resources")
	cmd.Flags().BoolVar(&show, "show", false, "accepted for compatibility; tablegen never opens a browser")

	return cmd
}
