// Package commands implements the paramstyle subcommands.
package commands

import "github.com/spf13/cobra"

// Apply adds the paramstyle commands to the provided root command.
func Apply(rootCmd *cobra.Command) {
	rootCmd.AddCommand(newEncodeCommand())
	rootCmd.AddCommand(newBodyCommand())
	rootCmd.AddCommand(newExamplesCommand())
}
