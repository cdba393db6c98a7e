// Package oas connects OpenAPI 3 documents to paramstyle. It derives the
// style, explode flag and escaper of a parameter from its declaration, the
// per-field explode flags of a form body from its encoding map, and renders
// the examples a document carries.
package oas

import (
	"errors"
	"fmt"

	"github.com/speakeasy-api/openapi/openapi"
	"github.com/speakeasy-api/openapi/sequencedmap"
	"github.com/speakeasy-api/openapi/values"
	"go.uber.org/zap"

	"github.com/tomasbasham/paramstyle"
	"github.com/tomasbasham/paramstyle/yamlvalue"
)

// FormURLEncoded is the media type whose bodies are encoded with deepform.
const FormURLEncoded = "application/x-www-form-urlencoded"

// ErrNoExample is returned when a parameter or media type documents no
// inline example.
var ErrNoExample = errors.New("oas: no example")

// ParameterOf returns the paramstyle declaration of p. Style and explode
// follow the OpenAPI defaults for the parameter's location when they are not
// given explicitly.
func ParameterOf(p *openapi.Parameter) (paramstyle.Parameter, error) {
	if p == nil {
		return paramstyle.Parameter{}, errors.New("oas: nil parameter")
	}
	style, err := styleOf(p.GetStyle())
	if err != nil {
		return paramstyle.Parameter{}, fmt.Errorf("oas: parameter %s: %w", p.GetName(), err)
	}
	return paramstyle.Parameter{
		Name:    p.GetName(),
		Style:   style,
		Explode: p.GetExplode(),
	}, nil
}

// OptionsOf returns the encode options implied by p: reserved characters
// pass through when allowReserved is set, and path parameters keep the
// characters RFC 3986 allows in a path segment.
func OptionsOf(p *openapi.Parameter) []paramstyle.Option {
	switch {
	case p.GetAllowReserved():
		return []paramstyle.Option{paramstyle.WithEscaper(paramstyle.EscapeAllowReserved)}
	case p.GetIn() == openapi.ParameterInPath:
		return []paramstyle.Option{paramstyle.WithEscaper(paramstyle.EscapePath)}
	default:
		return nil
	}
}

// Encode encodes v as parameter p.
func Encode(p *openapi.Parameter, v paramstyle.Value) (string, error) {
	param, err := ParameterOf(p)
	if err != nil {
		return "", err
	}
	return paramstyle.EncodeToString(param, v, OptionsOf(p)...)
}

// EncodeExample encodes the example documented on p: its example field, or
// else the first inline entry of its examples map.
func EncodeExample(p *openapi.Parameter) (string, error) {
	node, ok := exampleOf(p.GetExample(), p.GetExamples())
	if !ok {
		return "", fmt.Errorf("%w for parameter %s", ErrNoExample, p.GetName())
	}
	v, err := yamlvalue.FromNode(node)
	if err != nil {
		return "", err
	}
	return Encode(p, v)
}

// BodyExplode returns the per-field explode flags declared by the encoding
// map of a form media type. Fields without an encoding entry use the form
// default, which explodes.
func BodyExplode(mt *openapi.MediaType) paramstyle.ExplodeFunc {
	enc := mt.GetEncoding()
	return func(field string) bool {
		e, _ := enc.Get(field)
		return e.GetExplode()
	}
}

// EncodeBody encodes v as a form body described by mt.
func EncodeBody(mt *openapi.MediaType, v paramstyle.Value) (paramstyle.Pairs, error) {
	for field, e := range mt.GetEncoding().All() {
		switch style := e.GetStyle(); style {
		case openapi.SerializationStyleForm, openapi.SerializationStyleDeepObject:
		default:
			Logger().Warn("unsupported body field style, encoding by shape",
				zap.String("field", field),
				zap.Stringer("style", style))
		}
		if e.GetAllowReserved() {
			Logger().Debug("allowReserved ignored for body field",
				zap.String("field", field))
		}
	}
	return paramstyle.DeepForm(v, BodyExplode(mt))
}

// EncodeBodyExample encodes the example documented on mt as a form body.
func EncodeBodyExample(mt *openapi.MediaType) (string, error) {
	node, ok := exampleOf(mt.GetExample(), mt.GetExamples())
	if !ok {
		return "", ErrNoExample
	}
	v, err := yamlvalue.FromNode(node)
	if err != nil {
		return "", err
	}
	pairs, err := EncodeBody(mt, v)
	if err != nil {
		return "", err
	}
	return pairs.String(), nil
}

func styleOf(s openapi.SerializationStyle) (paramstyle.Style, error) {
	switch s {
	case openapi.SerializationStyleSimple:
		return paramstyle.StyleSimple, nil
	case openapi.SerializationStyleForm:
		return paramstyle.StyleForm, nil
	case openapi.SerializationStyleDeepObject:
		return paramstyle.StyleDeepObject, nil
	default:
		return "", fmt.Errorf("%w: %q", paramstyle.ErrUnsupportedStyle, s)
	}
}

func exampleOf(example values.Value, examples *sequencedmap.Map[string, *openapi.ReferencedExample]) (values.Value, bool) {
	if example != nil {
		return example, true
	}
	for name, ref := range examples.All() {
		ex := ref.GetObject()
		if ex == nil || ex.GetValue() == nil {
			Logger().Debug("skipping example without inline value", zap.String("example", name))
			continue
		}
		return ex.GetValue(), true
	}
	return nil, false
}
