package config

import (
	"fmt"
	"log/slog"
)

// Parser defines an interface for parsing raw configuration text into a generic key/value tree.
//
// The path parameter selects a nested table within the document using colon (:)
// as the separator for nested keys. For example:
//   - "preprocessor:d2" navigates to document["preprocessor"]["d2"]
//   - "" (empty path) means the entire document
//
// An empty document yields an empty tree. Malformed text yields a *SyntaxError.
type Parser interface {
	Parse(data []byte, path string) (map[string]any, error)
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Acceptor turns a generic key/value tree into a typed configuration value.
type Acceptor[T any] interface {
	Accept(tree map[string]any) (T, error)
}

// AcceptorFunc adapts a plain function to the Acceptor interface.
type AcceptorFunc[T any] func(tree map[string]any) (T, error)

// Accept calls f(tree).
func (f AcceptorFunc[T]) Accept(tree map[string]any) (T, error) {
	return f(tree)
}

// Provider returns a function that reads, parses and accepts configuration data.
// Every stage failure is terminal; no partially accepted value is ever returned.
func Provider[T any](acceptor Acceptor[T], path string) func(Parser, DataFetcher) (T, error) {
	return func(parser Parser, dataSourcer DataFetcher) (T, error) {
		var zero T

		data, err := dataSourcer.Fetch()
		if err != nil {
			return zero, fmt.Errorf("reading data error: %w", err)
		}

		tree, err := parser.Parse(data, path)
		if err != nil {
			return zero, fmt.Errorf("parsing error: %w", err)
		}

		result, err := acceptor.Accept(tree)
		if err != nil {
			return zero, fmt.Errorf("accepting error: %w", err)
		}

		slog.Info("configuration accepted", slog.String("path", path), slog.Int("keys", len(tree)))

		return result, nil
	}
}
