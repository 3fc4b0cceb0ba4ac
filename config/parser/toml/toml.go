package toml

import (
	"errors"
	"strings"

	"github.com/0xalexb/d2conf/config"

	"github.com/pelletier/go-toml/v2"
)

// Format is the format name used in error messages.
const Format = "toml"

// Parser implements config.Parser interface for TOML data.
type Parser struct{}

// NewParser creates a new TOML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes TOML data into a generic tree and returns the table at path.
// Empty or whitespace-only data yields an empty tree.
func (p *Parser) Parse(data []byte, path string) (map[string]any, error) {
	tree := make(map[string]any)

	if strings.TrimSpace(string(data)) != "" {
		err := toml.Unmarshal(data, &tree)
		if err != nil {
			return nil, syntaxError(err)
		}
	}

	return config.Section(tree, path)
}

func syntaxError(err error) *config.SyntaxError {
	result := &config.SyntaxError{Format: Format, Err: err}

	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		result.Line, result.Column = decodeErr.Position()
	}

	return result
}
