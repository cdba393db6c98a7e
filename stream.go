package paramstyle

import (
	"io"
)

// Encoder writes encoded parameters to an [io.Writer], joining successive
// parameters with "&". An Encoder is not safe for concurrent use.
type Encoder struct {
	w     io.Writer
	opts  options
	wrote bool
}

// NewEncoder creates a new [Encoder] that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: buildOptions(opts)}
}

// Encode encodes v as parameter p and writes it to the underlying
// [io.Writer].
func (e *Encoder) Encode(p Parameter, v Value) error {
	pairs, err := e.opts.encode(p, v)
	if err != nil {
		return err
	}
	return e.write(pairs)
}

// EncodeBody encodes v as a deepform body and writes it to the underlying
// [io.Writer].
func (e *Encoder) EncodeBody(v Value, explode ExplodeFunc) error {
	if explode == nil {
		explode = ExplodeAll(true)
	}
	pairs, err := encodeDeepForm(e.opts.escape, v, explode)
	if err != nil {
		return err
	}
	return e.write(pairs)
}

func (e *Encoder) write(pairs Pairs) error {
	if e.wrote {
		if _, err := io.WriteString(e.w, "&"); err != nil {
			return err
		}
	}
	if _, err := pairs.WriteTo(e.w); err != nil {
		return err
	}
	e.wrote = true
	return nil
}
