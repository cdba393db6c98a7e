package paramstyle

import (
	"io"
	"strings"
)

// Pair is one key=value unit of a query string or form body. Both halves are
// already percent-encoded.
type Pair struct {
	Key   string
	Value string
}

// Pairs is an ordered list of encoded pairs.
type Pairs []Pair

// String joins the pairs as key=value separated by "&".
func (p Pairs) String() string {
	var b strings.Builder
	p.writeTo(&b)
	return b.String()
}

// WriteTo writes the joined pairs to w.
func (p Pairs) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	p.writeTo(&b)
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

func (p Pairs) writeTo(b *strings.Builder) {
	for i, pair := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(pair.Key)
		b.WriteByte('=')
		b.WriteString(pair.Value)
	}
}
