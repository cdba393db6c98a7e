package valueof

import (
	"encoding"
	"fmt"
	"reflect"
	"slices"
	"strconv"

	"github.com/tomasbasham/paramstyle"
)

// Marshaler is the interface implemented by types that can marshal themselves
// into a single scalar parameter value.
type Marshaler interface {
	MarshalParam() (string, error)
}

// Of returns the [paramstyle.Value] describing v. A nil v, or a nil pointer,
// is described as an empty scalar.
func Of(v any) (paramstyle.Value, error) {
	if v == nil {
		return paramstyle.Scalar(""), nil
	}
	return valueOf(reflect.ValueOf(v))
}

// Parameter is a convenience function that describes v with [Of] and encodes
// it as parameter p.
func Parameter(p paramstyle.Parameter, v any, opts ...paramstyle.Option) (paramstyle.Pairs, error) {
	pv, err := Of(v)
	if err != nil {
		return nil, err
	}
	return paramstyle.Encode(p, pv, opts...)
}

func valueOf(v reflect.Value) (paramstyle.Value, error) {
	if !v.IsValid() {
		return paramstyle.Scalar(""), nil
	}

	// Handle nil pointers early to avoid dereferencing them.
	if (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) && v.IsNil() {
		return paramstyle.Scalar(""), nil
	}

	// Custom descriptions take precedence over the kind of the value.
	if s, ok := as[paramstyle.Valuer](v); ok {
		return s.ParamValue()
	}
	if m, ok := as[Marshaler](v); ok {
		return marshaler(m)
	}
	if m, ok := as[encoding.TextMarshaler](v); ok {
		text, err := m.MarshalText()
		if err != nil {
			return paramstyle.Value{}, err
		}
		return paramstyle.Scalar(string(text)), nil
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		return valueOf(v.Elem())
	case reflect.Struct:
		return structOf(v)
	case reflect.Map:
		return mapOf(v)
	case reflect.Slice, reflect.Array:
		return sliceOf(v)
	default:
		return scalarOf(v)
	}
}

func marshaler(m Marshaler) (paramstyle.Value, error) {
	s, err := m.MarshalParam()
	if err != nil {
		return paramstyle.Value{}, err
	}
	return paramstyle.Scalar(s), nil
}

func structOf(v reflect.Value) (paramstyle.Value, error) {
	fields := fieldsOf(v.Type())
	entries := make([]paramstyle.Entry, 0, len(fields))
	for _, f := range fields {
		fv := v.Field(f.index)
		if f.omitEmpty && isEmptyValue(fv) {
			continue
		}
		if isNil(fv) {
			continue
		}
		fieldValue, err := valueOf(fv)
		if err != nil {
			return paramstyle.Value{}, fmt.Errorf("valueof: field %s: %w", f.name, err)
		}
		entries = append(entries, paramstyle.Field(f.name, fieldValue))
	}
	return paramstyle.Mapping(entries...), nil
}

func mapOf(v reflect.Value) (paramstyle.Value, error) {
	if v.Type().Key().Kind() != reflect.String {
		return paramstyle.Value{}, fmt.Errorf("valueof: map keys must be strings, got %s", v.Type().Key())
	}

	// Map iteration order is random; sort for a deterministic encoding.
	keys := v.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) int {
		switch {
		case a.String() < b.String():
			return -1
		case a.String() > b.String():
			return 1
		}
		return 0
	})

	entries := make([]paramstyle.Entry, 0, len(keys))
	for _, k := range keys {
		mv := v.MapIndex(k)
		if isNil(mv) {
			continue
		}
		fieldValue, err := valueOf(mv)
		if err != nil {
			return paramstyle.Value{}, fmt.Errorf("valueof: key %s: %w", k.String(), err)
		}
		entries = append(entries, paramstyle.Field(k.String(), fieldValue))
	}
	return paramstyle.Mapping(entries...), nil
}

func sliceOf(v reflect.Value) (paramstyle.Value, error) {
	items := make([]paramstyle.Value, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)
		if isNil(elem) {
			continue
		}
		item, err := valueOf(elem)
		if err != nil {
			return paramstyle.Value{}, fmt.Errorf("valueof: index %d: %w", i, err)
		}
		items = append(items, item)
	}
	return paramstyle.Sequence(items...), nil
}

func scalarOf(v reflect.Value) (paramstyle.Value, error) {
	switch v.Kind() {
	case reflect.String:
		return paramstyle.Scalar(v.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return paramstyle.Int(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return paramstyle.Uint(v.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return paramstyle.Scalar(strconv.FormatFloat(v.Float(), 'f', -1, v.Type().Bits())), nil
	case reflect.Bool:
		return paramstyle.Bool(v.Bool()), nil
	default:
		return paramstyle.Value{}, fmt.Errorf("valueof: unsupported type: %s", v.Type())
	}
}

// as reports whether v, or a pointer to it, implements T.
func as[T any](v reflect.Value) (T, bool) {
	if v.CanAddr() {
		if m, ok := v.Addr().Interface().(T); ok {
			return m, true
		}
	}
	if v.CanInterface() {
		if m, ok := v.Interface().(T); ok {
			return m, true
		}
	}
	var zero T
	return zero, false
}

func isNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Interface, reflect.Pointer:
		return v.IsZero()
	}
	return false
}
