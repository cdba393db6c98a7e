// Package yamlvalue builds [paramstyle.Value] trees from YAML and JSON
// documents. Mappings keep their document order, which Go maps cannot.
package yamlvalue

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/tomasbasham/paramstyle"
)

// Unmarshal parses a single YAML or JSON document and returns the value it
// describes. An empty document is an empty scalar.
func Unmarshal(data []byte) (paramstyle.Value, error) {
	var n yaml.Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return paramstyle.Value{}, fmt.Errorf("yamlvalue: %w", err)
	}
	return FromNode(&n)
}

// FromNode returns the value described by n.
//
// Null scalars become empty scalars and booleans take their canonical "true"
// or "false" spelling. Every other scalar is kept verbatim. Mapping keys must
// be scalars.
func FromNode(n *yaml.Node) (paramstyle.Value, error) {
	if n == nil {
		return paramstyle.Scalar(""), nil
	}

	switch n.Kind {
	case 0:
		return paramstyle.Scalar(""), nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return paramstyle.Scalar(""), nil
		}
		return FromNode(n.Content[0])
	case yaml.AliasNode:
		return FromNode(n.Alias)
	case yaml.ScalarNode:
		return scalar(n)
	case yaml.SequenceNode:
		items := make([]paramstyle.Value, len(n.Content))
		for i, c := range n.Content {
			item, err := FromNode(c)
			if err != nil {
				return paramstyle.Value{}, err
			}
			items[i] = item
		}
		return paramstyle.Sequence(items...), nil
	case yaml.MappingNode:
		entries := make([]paramstyle.Entry, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind == yaml.AliasNode {
				k = k.Alias
			}
			if k == nil || k.Kind != yaml.ScalarNode {
				return paramstyle.Value{}, fmt.Errorf("yamlvalue: line %d: mapping keys must be scalars", n.Content[i].Line)
			}
			fv, err := FromNode(v)
			if err != nil {
				return paramstyle.Value{}, err
			}
			entries = append(entries, paramstyle.Field(k.Value, fv))
		}
		return paramstyle.Mapping(entries...), nil
	default:
		return paramstyle.Value{}, fmt.Errorf("yamlvalue: line %d: unsupported node kind %d", n.Line, n.Kind)
	}
}

func scalar(n *yaml.Node) (paramstyle.Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return paramstyle.Scalar(""), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return paramstyle.Value{}, fmt.Errorf("yamlvalue: line %d: %w", n.Line, err)
		}
		return paramstyle.Scalar(strconv.FormatBool(b)), nil
	default:
		return paramstyle.Scalar(n.Value), nil
	}
}
