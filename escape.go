package paramstyle

import (
	"golang.org/x/text/unicode/norm"
)

// Escaper percent-encodes a single literal token. An Escaper must be total
// and deterministic. It is applied exactly once to every key and value token;
// feeding already-escaped text back through it escapes the "%" again.
type Escaper func(string) string

const upperhex = "0123456789ABCDEF"

// keepSet marks the bytes an escaper leaves untouched.
type keepSet [256]bool

func newKeepSet(keep string) *keepSet {
	var s keepSet
	for c := 'a'; c <= 'z'; c++ {
		s[c] = true
	}
	for c := 'A'; c <= 'Z'; c++ {
		s[c] = true
	}
	for c := '0'; c <= '9'; c++ {
		s[c] = true
	}
	for _, c := range keep {
		s[c] = true
	}
	// Never pass "+" through: decoders disagree on whether it means space.
	s['+'] = false
	return &s
}

const unreserved = "-_.~"

var (
	unreservedSet    = newKeepSet(unreserved)
	pathSet          = newKeepSet(unreserved + "!$&'()*,;=:@")
	allowReservedSet = newKeepSet(unreserved + "!$&'()*,;=:/?#[]@")

	// WHATWG application/x-www-form-urlencoded percent-encode set.
	formSet = newKeepSet("*-._")
)

func escape(s string, keep *keepSet) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !keep[s[i]] {
			n++
		}
	}
	if n == 0 {
		return s
	}

	t := make([]byte, len(s)+2*n)
	j := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if keep[c] {
			t[j] = c
			j++
			continue
		}
		t[j] = '%'
		t[j+1] = upperhex[c>>4]
		t[j+2] = upperhex[c&15]
		j += 3
	}
	return string(t)
}

// Escape percent-encodes every byte of s outside the RFC 3986 unreserved set
// [A-Za-z0-9-_.~]. This deliberately departs from
// application/x-www-form-urlencoded: "+" becomes "%2B" and a space becomes
// "%20", never "+". It is the default escaper for every style.
func Escape(s string) string {
	return escape(s, unreservedSet)
}

// EscapePath is like [Escape] but leaves the RFC 3986 path sub-delimiters and
// ":" and "@" unescaped. "+" is still encoded.
func EscapePath(s string) string {
	return escape(s, pathSet)
}

// EscapeAllowReserved is like [Escape] but leaves every RFC 3986 reserved
// character other than "+" unescaped, matching OpenAPI's allowReserved. The
// output may contain "&", "=" and "#", so it is only safe when the query holds
// a single parameter.
func EscapeAllowReserved(s string) string {
	return escape(s, allowReservedSet)
}

// EscapeForm percent-encodes s with the WHATWG
// application/x-www-form-urlencoded set: only ASCII alphanumerics and "*-._"
// are kept, so "~" is encoded. A space is written as "%20" rather than "+",
// and a literal "+" as "%2B".
func EscapeForm(s string) string {
	return escape(s, formSet)
}

// Passthrough returns s unchanged.
func Passthrough(s string) string {
	return s
}

// NFC returns an Escaper that converts its input to Unicode normalization
// form C before escaping it with e. Composed and decomposed spellings of the
// same text then produce identical bytes on the wire.
func NFC(e Escaper) Escaper {
	return func(s string) string {
		return e(norm.NFC.String(s))
	}
}
