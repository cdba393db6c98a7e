package paramstyle

import (
	"strconv"
)

// Kind identifies the shape of a [Value].
type Kind uint8

const (
	// Invalid is the kind of the zero Value.
	Invalid Kind = iota
	// ScalarKind is a single already-stringified primitive.
	ScalarKind
	// SequenceKind is an ordered list of values.
	SequenceKind
	// MappingKind is an ordered list of key/value entries.
	MappingKind
)

func (k Kind) String() string {
	switch k {
	case ScalarKind:
		return "scalar"
	case SequenceKind:
		return "sequence"
	case MappingKind:
		return "mapping"
	default:
		return "invalid"
	}
}

// Value is the abstract shape consumed by the style encoders. A Value is
// immutable once constructed; the zero Value is invalid.
type Value struct {
	kind    Kind
	text    string
	items   []Value
	entries []Entry
}

// Entry is a single key/value member of a mapping.
type Entry struct {
	Key   string
	Value Value
}

// Valuer is the interface implemented by types that can describe themselves
// as a [Value].
type Valuer interface {
	ParamValue() (Value, error)
}

// Scalar returns a scalar value holding s verbatim.
func Scalar(s string) Value {
	return Value{kind: ScalarKind, text: s}
}

// Bool returns a scalar holding the canonical text "true" or "false".
func Bool(b bool) Value {
	return Scalar(strconv.FormatBool(b))
}

// Int returns a scalar holding the base 10 text of i.
func Int(i int64) Value {
	return Scalar(strconv.FormatInt(i, 10))
}

// Uint returns a scalar holding the base 10 text of u.
func Uint(u uint64) Value {
	return Scalar(strconv.FormatUint(u, 10))
}

// Float returns a scalar holding the shortest decimal text of f that round
// trips, without an exponent.
func Float(f float64) Value {
	return Scalar(strconv.FormatFloat(f, 'f', -1, 64))
}

// Strings returns a sequence of scalars.
func Strings(ss ...string) Value {
	items := make([]Value, len(ss))
	for i, s := range ss {
		items[i] = Scalar(s)
	}
	return Value{kind: SequenceKind, items: items}
}

// Sequence returns an ordered sequence of the given items.
func Sequence(items ...Value) Value {
	return Value{kind: SequenceKind, items: append([]Value(nil), items...)}
}

// Mapping returns an ordered mapping of the given entries. Keys are expected
// to be unique; duplicates are reported when the value is encoded.
func Mapping(entries ...Entry) Value {
	return Value{kind: MappingKind, entries: append([]Entry(nil), entries...)}
}

// Field is shorthand for an [Entry].
func Field(key string, v Value) Entry {
	return Entry{Key: key, Value: v}
}

// Kind reports the shape of v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsValid reports whether v was built by one of the constructors.
func (v Value) IsValid() bool {
	return v.kind != Invalid
}

// Text returns the text of a scalar, or "" for any other kind.
func (v Value) Text() string {
	return v.text
}

// Items returns the members of a sequence. The returned slice must not be
// modified.
func (v Value) Items() []Value {
	return v.items
}

// Entries returns the members of a mapping in insertion order. The returned
// slice must not be modified.
func (v Value) Entries() []Entry {
	return v.entries
}

// Len returns the number of members of a sequence or mapping, and 0 for a
// scalar.
func (v Value) Len() int {
	switch v.kind {
	case SequenceKind:
		return len(v.items)
	case MappingKind:
		return len(v.entries)
	default:
		return 0
	}
}

// Lookup returns the value stored under key in a mapping.
func (v Value) Lookup(key string) (Value, bool) {
	for _, e := range v.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return Value{}, false
}

// allScalars reports whether every member of a sequence is a scalar.
func (v Value) allScalars() bool {
	for _, item := range v.items {
		if item.kind != ScalarKind {
			return false
		}
	}
	return true
}

// checkKeys returns a *DuplicateKeyError naming the first repeated key of a
// mapping.
func checkKeys(v Value) error {
	if len(v.entries) < 2 {
		return nil
	}
	seen := make(map[string]struct{}, len(v.entries))
	for _, e := range v.entries {
		if _, ok := seen[e.Key]; ok {
			return &DuplicateKeyError{Key: e.Key}
		}
		seen[e.Key] = struct{}{}
	}
	return nil
}
