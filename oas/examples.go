package oas

import (
	"errors"

	"github.com/speakeasy-api/openapi/openapi"
	"go.uber.org/zap"
)

// InBody marks a [Rendered] example that belongs to a form request body
// rather than a parameter.
const InBody = "body"

// Rendered is the encoded example of one parameter or form body.
type Rendered struct {
	Path        string
	Method      openapi.HTTPMethod
	OperationID string
	Name        string
	In          string
	Encoded     string
	Err         error
}

// Examples encodes every inline parameter example, and every
// application/x-www-form-urlencoded request body example, found in doc. The
// results follow document order. Parameters and bodies without examples are
// skipped; encoding failures are reported in [Rendered.Err].
//
// References are only followed when they have already been resolved.
func Examples(doc *openapi.OpenAPI) []Rendered {
	var out []Rendered
	for path, ref := range doc.GetPaths().All() {
		item := ref.GetObject()
		if item == nil {
			Logger().Debug("skipping unresolved path item", zap.String("path", path))
			continue
		}
		for method, op := range item.All() {
			for _, p := range operationParameters(item, op) {
				encoded, err := EncodeExample(p)
				if errors.Is(err, ErrNoExample) {
					Logger().Debug("parameter has no example",
						zap.String("path", path),
						zap.Stringer("method", method),
						zap.String("parameter", p.GetName()))
					continue
				}
				out = append(out, Rendered{
					Path:        path,
					Method:      method,
					OperationID: op.GetOperationID(),
					Name:        p.GetName(),
					In:          p.GetIn().String(),
					Encoded:     encoded,
					Err:         err,
				})
			}

			mt, ok := op.GetRequestBody().GetObject().GetContent().Get(FormURLEncoded)
			if !ok {
				continue
			}
			encoded, err := EncodeBodyExample(mt)
			if errors.Is(err, ErrNoExample) {
				continue
			}
			out = append(out, Rendered{
				Path:        path,
				Method:      method,
				OperationID: op.GetOperationID(),
				In:          InBody,
				Encoded:     encoded,
				Err:         err,
			})
		}
	}
	return out
}

// operationParameters merges the parameters of a path item with those of one
// of its operations. An operation parameter replaces a path item parameter
// with the same name and location.
func operationParameters(item *openapi.PathItem, op *openapi.Operation) []*openapi.Parameter {
	type key struct {
		name string
		in   openapi.ParameterIn
	}

	var params []*openapi.Parameter
	index := map[key]int{}
	add := func(refs []*openapi.ReferencedParameter) {
		for _, ref := range refs {
			p := ref.GetObject()
			if p == nil {
				Logger().Debug("skipping unresolved parameter", zap.String("ref", string(ref.GetReference())))
				continue
			}
			k := key{p.GetName(), p.GetIn()}
			if i, ok := index[k]; ok {
				params[i] = p
				continue
			}
			index[k] = len(params)
			params = append(params, p)
		}
	}
	add(item.GetParameters())
	add(op.GetParameters())
	return params
}
