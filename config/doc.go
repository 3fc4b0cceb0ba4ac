// Package config provides a format-agnostic configuration loading pipeline.
//
// The package uses an interface-based design with three extension points:
//   - DataFetcher: retrieves raw document bytes (file, memory, ...)
//   - Parser: turns document text into a generic key/value tree, with section navigation
//   - Acceptor: validates the tree against a schema and builds the typed value
//
// Acceptance failures are reported as one of three structured errors:
// *SyntaxError, *TypeMismatchError or *MissingFieldError. Each matches its
// sentinel (ErrSyntax, ErrTypeMismatch, ErrMissingField) through errors.Is.
//
// # Section Navigation
//
// The Provider function accepts a path parameter that targets a nested table
// within the document. Paths use colon (:) as the separator:
//
//	"preprocessor:d2"           -> document["preprocessor"]["d2"]
//	""                          -> entire document
//
// # Example
//
//	provider := config.Provider(d2.Acceptor(), "preprocessor:d2")
//	cfg, err := provider(tomlparser.NewParser(), fetcher)
package config
