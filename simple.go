package paramstyle

import (
	"strings"
)

// Simple encodes v in the simple style used by path and header parameters.
// The result carries no key.
//
// Scalars are escaped as is. Sequence items are escaped individually and
// joined with ","; explode has no effect on sequences. Mappings become
// "k1,v1,k2,v2" or, when explode is set, "k1=v1,k2=v2". Empty sequences and
// mappings are rejected with [ErrShapeMismatch].
func Simple(v Value, explode bool, opts ...Option) (string, error) {
	o := buildOptions(opts)
	return encodeSimple(o.escape, v, explode)
}

func encodeSimple(esc Escaper, v Value, explode bool) (string, error) {
	switch v.kind {
	case ScalarKind:
		return esc(v.text), nil
	case SequenceKind:
		if len(v.items) == 0 {
			return "", shapeError(StyleSimple, "", SequenceKind, "empty sequence")
		}
		var b strings.Builder
		for i, item := range v.items {
			if item.kind != ScalarKind {
				return "", shapeError(StyleSimple, "", item.kind, "sequence items must be scalars")
			}
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(esc(item.text))
		}
		return b.String(), nil
	case MappingKind:
		if len(v.entries) == 0 {
			return "", shapeError(StyleSimple, "", MappingKind, "empty mapping")
		}
		if err := checkKeys(v); err != nil {
			return "", err
		}
		sep := byte(',')
		if explode {
			sep = '='
		}
		var b strings.Builder
		for i, e := range v.entries {
			if e.Value.kind != ScalarKind {
				return "", shapeError(StyleSimple, e.Key, e.Value.kind, "mapping values must be scalars")
			}
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(esc(e.Key))
			b.WriteByte(sep)
			b.WriteString(esc(e.Value.text))
		}
		return b.String(), nil
	default:
		return "", shapeError(StyleSimple, "", v.kind, "value is not initialised")
	}
}

func shapeError(style Style, name string, kind Kind, reason string) error {
	return &ShapeError{Style: style, Name: name, Kind: kind, Reason: reason}
}
