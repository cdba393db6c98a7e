package paramstyle

// DeepForm encodes mapping v as a single form body. Scalar and sequence fields
// are encoded with [Form] using the field name as the parameter name; mapping
// fields are encoded with [DeepObject]. explode supplies the flag for each
// field and defaults to true for every field when nil.
//
// Both delegates share one escaper, so the whole body is escaped
// consistently. An empty body, an empty field and a field holding a sequence
// of mappings have no deepform encoding and are rejected with
// [ErrShapeMismatch].
func DeepForm(v Value, explode ExplodeFunc, opts ...Option) (Pairs, error) {
	o := buildOptions(opts)
	if explode == nil {
		explode = ExplodeAll(true)
	}
	return encodeDeepForm(o.escape, v, explode)
}

func encodeDeepForm(esc Escaper, v Value, explode ExplodeFunc) (Pairs, error) {
	if v.kind != MappingKind {
		return nil, shapeError(StyleDeepForm, "", v.kind, "body must be a mapping")
	}
	if len(v.entries) == 0 {
		return nil, shapeError(StyleDeepForm, "", MappingKind, "empty mapping")
	}
	if err := checkKeys(v); err != nil {
		return nil, err
	}

	var out Pairs
	for _, e := range v.entries {
		var (
			pairs Pairs
			err   error
		)
		switch e.Value.kind {
		case ScalarKind:
			pairs, err = encodeForm(esc, e.Key, e.Value, explode(e.Key))
		case SequenceKind:
			for _, item := range e.Value.items {
				if item.kind == MappingKind {
					return nil, shapeError(StyleDeepForm, e.Key, SequenceKind, "sequences of mappings have no deepform encoding")
				}
			}
			pairs, err = encodeForm(esc, e.Key, e.Value, explode(e.Key))
		case MappingKind:
			pairs, err = encodeDeepObject(esc, e.Key, e.Value, explode(e.Key))
		default:
			err = shapeError(StyleDeepForm, e.Key, e.Value.kind, "value is not initialised")
		}
		if err != nil {
			return nil, err
		}
		out = append(out, pairs...)
	}
	return out, nil
}
