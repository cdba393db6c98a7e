package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tomasbasham/paramstyle/cmd/paramstyle/commands"
	"github.com/tomasbasham/paramstyle/oas"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "paramstyle",
	Short: "Encode values with OpenAPI parameter serialization styles",
	Long: `Encode YAML or JSON values into the exact wire text mandated by the
OpenAPI 3 parameter styles simple, form and deepObject, and into
application/x-www-form-urlencoded bodies that mix form and deepObject fields.

Literal "+" and spaces are always percent-encoded, so the output is read the
same way by query-string and form decoders.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}

	l := zap.NewNop()
	if verbose {
		if l, err = zap.NewDevelopment(); err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
	}
	zap.ReplaceGlobals(l)
	oas.SetLogger(l)
	return nil
}

func init() {
	if info, ok := debug.ReadBuildInfo(); ok && version == "dev" {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			rootCmd.Version = v
		}
	}

	commands.Apply(rootCmd)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
