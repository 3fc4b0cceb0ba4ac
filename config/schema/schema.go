// Package schema implements schema-directed acceptance of generic configuration trees.
//
// A Schema is an ordered field table. Each Field maps a document key to a
// declared Kind, an optional default provider, and an assignment into the
// target value. Accept walks the table once: present keys are coerced to their
// kind, absent keys fall back to the default provider, and absent keys with no
// default stay absent. Keys the table does not declare are ignored.
package schema

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/0xalexb/d2conf/config"
)

// Kind is the declared type of a schema field.
type Kind int

// Supported field kinds.
const (
	String Kind = iota
	Path
	Bool
	Table
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Path:
		return "path (string)"
	case Bool:
		return "boolean"
	case Table:
		return "table"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Field declares one recognized document key.
type Field[T any] struct {
	// Key is the document key, e.g. "output-dir".
	Key  string
	Kind Kind
	// Required makes absence an error. Only meaningful when Default is nil.
	Required bool
	// Default supplies the value when the key is absent. Nil means no default.
	Default func() any
	// Nested accepts the sub-table of a Table field.
	Nested func(tree map[string]any) (any, error)
	// Assign stores the coerced value into the target.
	Assign func(target *T, value any)
	// Extract reads the field back for serialization; ok is false when the value is absent.
	Extract func(source T) (value any, ok bool)
}

// Schema is an ordered field table describing one table of a document.
type Schema[T any] struct {
	// Table is the dotted name of the table, empty for the document root.
	Table  string
	Fields []Field[T]
}

// New returns a schema for the table at the given dotted name.
func New[T any](table string, fields ...Field[T]) Schema[T] {
	return Schema[T]{Table: table, Fields: fields}
}

// Keys returns the recognized document keys in declaration order.
func (s Schema[T]) Keys() []string {
	keys := make([]string, 0, len(s.Fields))
	for _, field := range s.Fields {
		keys = append(keys, field.Key)
	}

	return keys
}

// Accept builds a T from tree. It never returns a partially populated value:
// on error the zero T is returned.
func (s Schema[T]) Accept(tree map[string]any) (T, error) {
	var target, zero T

	defaulted := make([]string, 0, len(s.Fields))

	for _, field := range s.Fields {
		raw, present := tree[field.Key]

		switch {
		case present:
			value, err := s.coerce(field, raw)
			if err != nil {
				return zero, err
			}

			field.Assign(&target, value)
		case field.Default != nil:
			field.Assign(&target, field.Default())
			defaulted = append(defaulted, s.qualify(field.Key))
		case field.Required:
			return zero, &config.MissingFieldError{Field: s.qualify(field.Key), Table: s.Table}
		}
	}

	for _, key := range s.unknown(tree) {
		slog.Debug("ignoring unknown key", slog.String("key", s.qualify(key)))
	}

	if len(defaulted) > 0 {
		slog.Debug("defaults applied", slog.String("keys", strings.Join(defaulted, ",")))
	}

	return target, nil
}

// Tree renders value back into a generic tree using the document keys.
// Absent optional fields are left out. Fields without Extract are skipped.
func (s Schema[T]) Tree(value T) map[string]any {
	tree := make(map[string]any, len(s.Fields))

	for _, field := range s.Fields {
		if field.Extract == nil {
			continue
		}

		if v, ok := field.Extract(value); ok {
			tree[field.Key] = v
		}
	}

	return tree
}

func (s Schema[T]) coerce(field Field[T], raw any) (any, error) {
	mismatch := func() error {
		return &config.TypeMismatchError{
			Field:    s.qualify(field.Key),
			Expected: field.Kind.String(),
			Actual:   config.TypeName(raw),
		}
	}

	switch field.Kind {
	case String, Path:
		value, ok := raw.(string)
		if !ok {
			return nil, mismatch()
		}

		return value, nil
	case Bool:
		value, ok := raw.(bool)
		if !ok {
			return nil, mismatch()
		}

		return value, nil
	case Table:
		table, ok := raw.(map[string]any)
		if !ok {
			return nil, mismatch()
		}

		if field.Nested == nil {
			return table, nil
		}

		return field.Nested(table)
	default:
		return nil, fmt.Errorf("field %q: unsupported kind %s", s.qualify(field.Key), field.Kind)
	}
}

func (s Schema[T]) unknown(tree map[string]any) []string {
	known := make(map[string]struct{}, len(s.Fields))
	for _, field := range s.Fields {
		known[field.Key] = struct{}{}
	}

	var unknown []string

	for key := range tree {
		if _, ok := known[key]; !ok {
			unknown = append(unknown, key)
		}
	}

	sort.Strings(unknown)

	return unknown
}

func (s Schema[T]) qualify(key string) string {
	if s.Table == "" {
		return key
	}

	return s.Table + "." + key
}
