package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomasbasham/paramstyle"
)

type encodeFlags struct {
	name          string
	style         string
	explode       bool
	allowReserved bool
	path          bool
	selector      string
}

func newEncodeCommand() *cobra.Command {
	var flags encodeFlags

	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "Encode a value as a single parameter",
		Long: `Encode a YAML or JSON value as a single OpenAPI parameter.

The value is read from the given file, or from stdin when the file is '-' or
omitted. When --explode is not given the OpenAPI default applies: true for the
form style and false otherwise.

Examples:
  echo '[blue, black]' | paramstyle encode --name color
  echo '{R: 100, G: 200}' | paramstyle encode --name color --style deepObject
  paramstyle encode --style simple --select '$.id' value.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("explode") {
				flags.explode = flags.style == string(paramstyle.StyleForm) ||
					flags.style == string(paramstyle.StyleDeepForm)
			}
			return runEncode(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.name, "name", "n", "", "parameter name")
	cmd.Flags().StringVarP(&flags.style, "style", "s", string(paramstyle.StyleForm), "serialization style: simple, form, deepObject or deepform")
	cmd.Flags().BoolVarP(&flags.explode, "explode", "e", true, "explode sequences and mappings")
	cmd.Flags().BoolVar(&flags.allowReserved, "allow-reserved", false, "leave RFC 3986 reserved characters unescaped")
	cmd.Flags().BoolVar(&flags.path, "path", false, "escape for a URL path segment")
	cmd.Flags().StringVar(&flags.selector, "select", "", "JSONPath selecting the value within the input")

	return cmd
}

func runEncode(cmd *cobra.Command, args []string, flags encodeFlags) error {
	style, err := paramstyle.ParseStyle(flags.style)
	if err != nil {
		return err
	}
	if flags.name == "" && (style == paramstyle.StyleForm || style == paramstyle.StyleDeepObject) {
		return errors.New("--name is required for the form and deepObject styles")
	}

	v, err := readValue(cmd, args, flags.selector)
	if err != nil {
		return err
	}

	var opts []paramstyle.Option
	switch {
	case flags.allowReserved:
		opts = append(opts, paramstyle.WithEscaper(paramstyle.EscapeAllowReserved))
	case flags.path:
		opts = append(opts, paramstyle.WithEscaper(paramstyle.EscapePath))
	}

	p := paramstyle.Parameter{Name: flags.name, Style: style, Explode: flags.explode}
	s, err := paramstyle.EncodeToString(p, v, opts...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
	return err
}
