// Package cli provides the command-line interface for the fielddoc tools.
package cli

import (
	"github.com/spf13/cobra"
)

// Execute creates and runs the root command.
func Execute() error {
	rootCmd := &cobra.Command{
		Use:   "fielddoc",
		Short: "Field-metadata documentation tools",
	}

	rootCmd.AddCommand(newGenerateCommand())

	return rootCmd.Execute()
}
