// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml. Documents are decoded into a
// generic key/value tree; mappings become map[string]any so the same schema
// accepts YAML and TOML documents alike.
//
// Usage:
//
//	parser := yaml.NewParser()
//	tree, err := parser.Parse(data, "preprocessor:d2")
//
// Path Conversion:
//   - Empty path "" -> entire document
//   - Single key "key" -> "$.key"
//   - Nested path "preprocessor:d2" -> "$.preprocessor.d2"
//
// A path that runs into a scalar or a list is a *config.TypeMismatchError
// naming the offending segment, as with the other parsers. A null section
// is an empty table.
package yaml
