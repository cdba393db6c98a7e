package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/speakeasy-api/openapi/openapi"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tomasbasham/paramstyle/oas"
)

func newExamplesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "examples <file>",
		Short: "Encode the parameter examples of an OpenAPI document",
		Long: `Encode every inline parameter example and form body example found in an
OpenAPI 3 document, using the style and explode flag each one declares.

Each line shows the operation, the parameter and its encoded text.`,
		Args: cobra.ExactArgs(1),
		RunE: runExamples,
	}
}

func runExamples(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	file := filepath.Clean(args[0])

	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	doc, validationErrs, err := openapi.Unmarshal(ctx, f)
	if err != nil {
		return fmt.Errorf("failed to unmarshal file: %w", err)
	}
	for _, verr := range validationErrs {
		zap.L().Warn("document is not valid", zap.Error(verr))
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, r := range oas.Examples(doc) {
		label := r.Name
		if r.In == oas.InBody {
			label = oas.InBody
		}
		if r.Err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %s %s (%s): %v\n", r.Method, r.Path, label, r.In, r.Err)
			continue
		}
		fmt.Fprintf(out, "%s %s %s (%s): %s\n", r.Method, r.Path, label, r.In, r.Encoded)
	}

	if failed > 0 {
		return errors.New("some examples could not be encoded")
	}
	return nil
}
