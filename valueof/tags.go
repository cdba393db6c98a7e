package valueof

import (
	"reflect"
	"strings"
	"sync"
)

// field describes one struct field that takes part in a mapping.
type field struct {
	index     int
	name      string
	omitEmpty bool
}

// fieldCache maps a struct [reflect.Type] to its []field. It is safe for
// concurrent use.
var fieldCache sync.Map

// fieldsOf returns the encodable fields of struct type t in declaration
// order. Unexported fields and fields tagged "-" or ",ignore" are left out;
// a field without a tag name is named after the Go field.
func fieldsOf(t reflect.Type) []field {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]field)
	}

	fields := make([]field, 0, t.NumField())
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		f, ok := parseField(sf.Tag.Get("param"))
		if !ok {
			continue
		}
		if f.name == "" {
			f.name = sf.Name
		}
		f.index = i
		fields = append(fields, f)
	}

	actual, _ := fieldCache.LoadOrStore(t, fields)
	return actual.([]field)
}

// parseField reads a `param:"name,omitempty"` tag. It reports false when the
// field is excluded.
func parseField(tag string) (field, bool) {
	name, opts, _ := strings.Cut(tag, ",")
	name = strings.TrimSpace(name)
	if name == "-" {
		return field{}, false
	}

	f := field{name: name}
	for _, opt := range strings.Split(opts, ",") {
		switch strings.TrimSpace(opt) {
		case "omitempty":
			f.omitEmpty = true
		case "ignore":
			return field{}, false
		}
	}
	return f, true
}
