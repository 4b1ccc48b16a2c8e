// Package main provides the entry point for the tablegen CLI tool.
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/benchtable/tablegen/cmd/tablegen/commands"
)

func main() {
	root := commands.NewRootCommand()

	if err := root.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err) //nolint:errcheck // best-effort diagnostic output

		os.Exit(1)
	}
}
