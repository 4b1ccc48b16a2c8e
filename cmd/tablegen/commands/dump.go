package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benchtable/tablegen/internal/aggregate"
)

func newDumpCommand() *cobra.Command {
	var in inputFlags

	cmd := &cobra.Command{
		Use:   "dump [flags] result-file...",
		Short: "Print the REGRESSIONS/STATS regression-count report",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cliLogger()

			opts := in.options(args, logger)
			opts.NoDiff = true

			result, err := aggregate.Run(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("dump: %w", err)
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), aggregate.BuildDump(result, opts.IgnoreFlappingTimeoutRegressions))

			return err
		},
	}

	in.register(cmd)

	return cmd
}
