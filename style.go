package paramstyle

import (
	"fmt"
)

// Style is an OpenAPI parameter serialization style.
type Style string

const (
	// StyleSimple is used for path and header parameters. It never emits a
	// key.
	StyleSimple Style = "simple"
	// StyleForm is the default style for query parameters.
	StyleForm Style = "form"
	// StyleDeepObject renders the fields of a mapping as bracketed keys.
	StyleDeepObject Style = "deepObject"
	// StyleDeepForm encodes a form body whose scalar and sequence fields use
	// form and whose mapping fields use deepObject.
	StyleDeepForm Style = "deepform"
)

func (s Style) String() string {
	return string(s)
}

// ParseStyle returns the Style named by s.
func ParseStyle(s string) (Style, error) {
	switch st := Style(s); st {
	case StyleSimple, StyleForm, StyleDeepObject, StyleDeepForm:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedStyle, s)
	}
}

// Parameter declares how a single value is serialized.
type Parameter struct {
	Name    string
	Style   Style
	Explode bool
}

// ExplodeFunc reports the explode flag for a field of a deepform body.
type ExplodeFunc func(field string) bool

// ExplodeAll returns an ExplodeFunc that reports explode for every field.
func ExplodeAll(explode bool) ExplodeFunc {
	return func(string) bool { return explode }
}

// Option configures a single encode call.
type Option func(*options)

type options struct {
	escape Escaper
}

// WithEscaper sets the escaper applied to every key and value token. The
// default is [Escape].
func WithEscaper(e Escaper) Option {
	return func(o *options) {
		if e != nil {
			o.escape = e
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{escape: Escape}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
