package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/benchtable/tablegen/pkg/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "tablegen %s\n", version.String())
		},
	}
}
