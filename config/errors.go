package config

import (
	"errors"
	"fmt"
)

// ErrSyntax is matched by every *SyntaxError.
var ErrSyntax = errors.New("syntax error")

// ErrTypeMismatch is matched by every *TypeMismatchError.
var ErrTypeMismatch = errors.New("type mismatch")

// ErrMissingField is matched by every *MissingFieldError.
var ErrMissingField = errors.New("missing field")

// ErrSectionNotFound is returned by parsers when the requested section path does not exist.
var ErrSectionNotFound = errors.New("section not found")

// SyntaxError reports a document that does not parse in its format.
// Line and Column are 1-based and zero when the parser could not locate the error.
type SyntaxError struct {
	Format string
	Line   int
	Column int
	Err    error
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s %s at line %d, column %d: %v", e.Format, ErrSyntax, e.Line, e.Column, e.Err)
	}

	return fmt.Sprintf("%s %s: %v", e.Format, ErrSyntax, e.Err)
}

// Unwrap returns the underlying parser error.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrSyntax.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// TypeMismatchError reports a present key whose value does not have the declared type.
// Field is the dotted document key, e.g. "inline" or "fonts.bold".
type TypeMismatchError struct {
	Field    string
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s for field %q: expected %s, got %s", ErrTypeMismatch, e.Field, e.Expected, e.Actual)
}

// Is reports whether target is ErrTypeMismatch.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// MissingFieldError reports a required key absent from a table that is present.
type MissingFieldError struct {
	Field string
	Table string
}

func (e *MissingFieldError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("%s %q", ErrMissingField, e.Field)
	}

	return fmt.Sprintf("%s %q in table %q", ErrMissingField, e.Field, e.Table)
}

// Is reports whether target is ErrMissingField.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// TypeName describes a decoded document value for error messages.
func TypeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "integer"
	case float32, float64:
		return "float"
	case map[string]any:
		return "table"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", value)
	}
}
