package paramstyle

import (
	"fmt"
)

// Encode encodes v as parameter p and returns its pairs in output order.
// deepform parameters apply p.Explode to every field. The simple style has no
// key and is rejected; use [Simple] or [EncodeToString] for it.
func Encode(p Parameter, v Value, opts ...Option) (Pairs, error) {
	o := buildOptions(opts)
	return o.encode(p, v)
}

// EncodeToString is a convenience function that returns the final text of v
// encoded as parameter p: the keyless text for simple, and the pairs joined
// with "&" for every other style.
func EncodeToString(p Parameter, v Value, opts ...Option) (string, error) {
	o := buildOptions(opts)
	if p.Style == StyleSimple {
		return encodeSimple(o.escape, v, p.Explode)
	}
	pairs, err := o.encode(p, v)
	if err != nil {
		return "", err
	}
	return pairs.String(), nil
}

// EncodeValuer encodes the value described by src as parameter p.
func EncodeValuer(p Parameter, src Valuer, opts ...Option) (Pairs, error) {
	v, err := src.ParamValue()
	if err != nil {
		return nil, fmt.Errorf("paramstyle: %s: %w", p.Name, err)
	}
	return Encode(p, v, opts...)
}

func (o options) encode(p Parameter, v Value) (Pairs, error) {
	switch p.Style {
	case StyleForm:
		return encodeForm(o.escape, p.Name, v, p.Explode)
	case StyleDeepObject:
		return encodeDeepObject(o.escape, p.Name, v, p.Explode)
	case StyleDeepForm:
		return encodeDeepForm(o.escape, v, ExplodeAll(p.Explode))
	case StyleSimple:
		return nil, fmt.Errorf("%w: simple style has no key", ErrUnsupportedStyle)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedStyle, p.Style)
	}
}
