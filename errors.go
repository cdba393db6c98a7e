package paramstyle

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned when a style is applied to a value shape it
	// does not define.
	ErrShapeMismatch = errors.New("paramstyle: shape mismatch")

	// ErrDuplicateKey is returned when a mapping holds the same key twice.
	ErrDuplicateKey = errors.New("paramstyle: duplicate key")

	// ErrUnsupportedStyle is returned for styles this package does not
	// implement.
	ErrUnsupportedStyle = errors.New("paramstyle: unsupported style")
)

// ShapeError describes a value whose shape is not defined for a style.
type ShapeError struct {
	Style Style
	Name  string // parameter or field name, may be empty for simple
	Kind  Kind
	// Reason is a short description of what was expected.
	Reason string
}

func (e *ShapeError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("paramstyle: %s style cannot encode %s: %s", e.Style, e.Kind, e.Reason)
	}
	return fmt.Sprintf("paramstyle: %s style cannot encode %s %q: %s", e.Style, e.Kind, e.Name, e.Reason)
}

// Is reports whether target is [ErrShapeMismatch].
func (e *ShapeError) Is(target error) bool {
	return target == ErrShapeMismatch
}

// DuplicateKeyError names the repeated key of a mapping.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("paramstyle: duplicate key %q", e.Key)
}

// Is reports whether target is [ErrDuplicateKey].
func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}
