// Package jsonc provides a JSON parser implementation for the config package
// that also accepts comments and trailing commas.
//
// Comments are stripped with github.com/tidwall/jsonc before decoding, which
// preserves byte offsets, so syntax error positions match the original text.
package jsonc

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/0xalexb/d2conf/config"

	"github.com/tidwall/jsonc"
)

// Format is the format name used in error messages.
const Format = "json"

// Parser implements config.Parser interface for JSON and JSONC data.
type Parser struct{}

// NewParser creates a new JSONC parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes JSONC data into a generic tree and returns the object at path.
// Empty data, or data holding only comments, yields an empty tree.
func (p *Parser) Parse(data []byte, path string) (map[string]any, error) {
	plain := jsonc.ToJSON(data)

	if len(bytes.TrimSpace(plain)) == 0 {
		return config.Section(make(map[string]any), path)
	}

	var raw any

	err := json.Unmarshal(plain, &raw)
	if err != nil {
		return nil, syntaxError(plain, err)
	}

	tree, ok := raw.(map[string]any)
	if !ok {
		return nil, &config.TypeMismatchError{Field: "(document)", Expected: "table", Actual: config.TypeName(raw)}
	}

	return config.Section(tree, path)
}

func syntaxError(data []byte, err error) *config.SyntaxError {
	result := &config.SyntaxError{Format: Format, Err: err}

	var jsonErr *json.SyntaxError
	if errors.As(err, &jsonErr) {
		result.Line, result.Column = position(data, jsonErr.Offset)
	}

	return result
}

// position converts a byte offset into a 1-based line and column.
func position(data []byte, offset int64) (int, int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}

	before := data[:offset]
	line := bytes.Count(before, []byte("\n")) + 1
	column := len(before) - bytes.LastIndexByte(before, '\n')

	return line, column
}
