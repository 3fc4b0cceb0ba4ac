// Package toml provides a TOML parser implementation for the config package.
//
// This package uses github.com/pelletier/go-toml/v2 to decode documents into a
// generic key/value tree. Tables become nested map[string]any values, so a
// section such as [preprocessor.d2] is reachable with the path "preprocessor:d2".
//
// Usage:
//
//	parser := toml.NewParser()
//	tree, err := parser.Parse(data, "preprocessor:d2")
//
// Syntax errors are reported as *config.SyntaxError carrying the line and
// column reported by go-toml.
package toml
