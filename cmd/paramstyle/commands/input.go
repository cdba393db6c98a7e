package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/speakeasy-api/jsonpath/pkg/jsonpath"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/tomasbasham/paramstyle"
	"github.com/tomasbasham/paramstyle/yamlvalue"
)

// stdinIndicator is the conventional Unix indicator to read from stdin.
const stdinIndicator = "-"

var errNoMatch = errors.New("selector matched nothing")

// readValue reads the YAML or JSON document named by args, or stdin when no
// file or "-" is given, and returns the value at selector. An empty selector
// selects the whole document.
func readValue(cmd *cobra.Command, args []string, selector string) (paramstyle.Value, error) {
	data, err := readInput(cmd, args)
	if err != nil {
		return paramstyle.Value{}, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return paramstyle.Value{}, fmt.Errorf("failed to parse input: %w", err)
	}

	node := &doc
	if selector != "" {
		if node, err = selectNode(&doc, selector); err != nil {
			return paramstyle.Value{}, err
		}
	}
	return yamlvalue.FromNode(node)
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == stdinIndicator {
		zap.L().Debug("reading input from stdin")
		return io.ReadAll(cmd.InOrStdin())
	}

	file := filepath.Clean(args[0])
	zap.L().Debug("reading input", zap.String("file", file))
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

// selectNode returns the first node matched by the RFC 9535 JSONPath
// expression expr.
func selectNode(root *yaml.Node, expr string) (*yaml.Node, error) {
	path, err := jsonpath.NewPath(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", expr, err)
	}
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}
	matches := path.Query(root)
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %s", errNoMatch, expr)
	}
	if len(matches) > 1 {
		zap.L().Debug("selector matched several nodes, using the first",
			zap.String("selector", expr),
			zap.Int("matches", len(matches)))
	}
	return matches[0], nil
}
