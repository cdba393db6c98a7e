package commands

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/tomasbasham/paramstyle"
)

func newBodyCommand() *cobra.Command {
	var (
		noExplode []string
		selector  string
		whatwg    bool
	)

	cmd := &cobra.Command{
		Use:   "body [file]",
		Short: "Encode a mapping as an application/x-www-form-urlencoded body",
		Long: `Encode a YAML or JSON mapping as a form body.

Scalar and sequence fields are encoded with the form style, mapping fields
with the deepObject style. Every field explodes unless named by --no-explode.

Example:
  echo '{id: 5, filter: {status: open}}' | paramstyle body
  # id=5&filter[status]=open`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := readValue(cmd, args, selector)
			if err != nil {
				return err
			}
			explode := func(field string) bool {
				return !slices.Contains(noExplode, field)
			}
			var opts []paramstyle.Option
			if whatwg {
				opts = append(opts, paramstyle.WithEscaper(paramstyle.EscapeForm))
			}
			pairs, err := paramstyle.DeepForm(v, explode, opts...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), pairs.String())
			return err
		},
	}

	cmd.Flags().StringSliceVar(&noExplode, "no-explode", nil, "fields encoded without explode")
	cmd.Flags().BoolVar(&whatwg, "whatwg", false, "escape with the WHATWG form set, which keeps \"*\" and encodes \"~\"")
	cmd.Flags().StringVar(&selector, "select", "", "JSONPath selecting the body within the input")

	return cmd
}
