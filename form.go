package paramstyle

import (
	"strings"
)

// Form encodes v in the form style used by query parameters.
//
//   - A scalar yields name=value regardless of explode.
//   - An exploded sequence repeats the key: name=a&name=b. Otherwise the
//     items are joined: name=a,b.
//   - An exploded mapping uses each field name as its own key and discards
//     name: k1=v1&k2=v2. Otherwise it collapses to name=k1,v1,k2,v2.
//
// Empty sequences and mappings have no form encoding and are rejected with
// [ErrShapeMismatch].
func Form(name string, v Value, explode bool, opts ...Option) (Pairs, error) {
	o := buildOptions(opts)
	return encodeForm(o.escape, name, v, explode)
}

func encodeForm(esc Escaper, name string, v Value, explode bool) (Pairs, error) {
	switch v.kind {
	case ScalarKind:
		return Pairs{{Key: esc(name), Value: esc(v.text)}}, nil
	case SequenceKind:
		if len(v.items) == 0 {
			return nil, shapeError(StyleForm, name, SequenceKind, "empty sequence")
		}
		if !v.allScalars() {
			return nil, shapeError(StyleForm, name, SequenceKind, "sequence items must be scalars")
		}
		key := esc(name)
		if explode {
			out := make(Pairs, len(v.items))
			for i, item := range v.items {
				out[i] = Pair{Key: key, Value: esc(item.text)}
			}
			return out, nil
		}
		tokens := make([]string, len(v.items))
		for i, item := range v.items {
			tokens[i] = esc(item.text)
		}
		return Pairs{{Key: key, Value: strings.Join(tokens, ",")}}, nil
	case MappingKind:
		if len(v.entries) == 0 {
			return nil, shapeError(StyleForm, name, MappingKind, "empty mapping")
		}
		if err := checkKeys(v); err != nil {
			return nil, err
		}
		for _, e := range v.entries {
			if e.Value.kind != ScalarKind {
				return nil, shapeError(StyleForm, e.Key, e.Value.kind, "mapping values must be scalars")
			}
		}
		if explode {
			out := make(Pairs, len(v.entries))
			for i, e := range v.entries {
				out[i] = Pair{Key: esc(e.Key), Value: esc(e.Value.text)}
			}
			return out, nil
		}
		tokens := make([]string, 0, 2*len(v.entries))
		for _, e := range v.entries {
			tokens = append(tokens, esc(e.Key), esc(e.Value.text))
		}
		return Pairs{{Key: esc(name), Value: strings.Join(tokens, ",")}}, nil
	default:
		return nil, shapeError(StyleForm, name, v.kind, "value is not initialised")
	}
}
