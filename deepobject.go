package paramstyle

import (
	"strings"
)

// DeepObject encodes the fields of mapping v as bracketed keys:
// name[k1]=v1&name[k2]=v2. A field holding a sequence of scalars repeats its
// bracketed key once per item. A v that is not a mapping, or a field holding
// a nested mapping, is rejected with [ErrShapeMismatch], as are empty
// mappings and empty sequence fields.
//
// deepObject is only defined with explode set. Without it the keys stay
// bracketed and a sequence field collapses to a single comma-joined pair,
// name[k]=v1,v2, rather than repeating its key.
func DeepObject(name string, v Value, explode bool, opts ...Option) (Pairs, error) {
	o := buildOptions(opts)
	return encodeDeepObject(o.escape, name, v, explode)
}

func encodeDeepObject(esc Escaper, name string, v Value, explode bool) (Pairs, error) {
	if v.kind != MappingKind {
		return nil, shapeError(StyleDeepObject, name, v.kind, "value must be a mapping")
	}
	if len(v.entries) == 0 {
		return nil, shapeError(StyleDeepObject, name, MappingKind, "empty mapping")
	}
	if err := checkKeys(v); err != nil {
		return nil, err
	}

	prefix := esc(name)
	var out Pairs
	for _, e := range v.entries {
		key := prefix + "[" + esc(e.Key) + "]"
		switch e.Value.kind {
		case ScalarKind:
			out = append(out, Pair{Key: key, Value: esc(e.Value.text)})
		case SequenceKind:
			if !e.Value.allScalars() {
				return nil, shapeError(StyleDeepObject, e.Key, SequenceKind, "sequence items must be scalars")
			}
			if len(e.Value.items) == 0 {
				return nil, shapeError(StyleDeepObject, e.Key, SequenceKind, "empty sequence")
			}
			if !explode {
				tokens := make([]string, len(e.Value.items))
				for i, item := range e.Value.items {
					tokens[i] = esc(item.text)
				}
				out = append(out, Pair{Key: key, Value: strings.Join(tokens, ",")})
				continue
			}
			for _, item := range e.Value.items {
				out = append(out, Pair{Key: key, Value: esc(item.text)})
			}
		default:
			return nil, shapeError(StyleDeepObject, e.Key, e.Value.kind, "fields must be scalars or sequences of scalars")
		}
	}
	return out, nil
}
