package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/0xalexb/d2conf/config"

	"github.com/goccy/go-yaml"
)

// Format is the format name used in error messages.
const Format = "yaml"

// Parser implements config.Parser interface for YAML data.
// It uses goccy/go-yaml PathString for section navigation.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes YAML data into a generic tree and returns the mapping at path.
// Empty data and documents holding only comments yield an empty tree.
func (p *Parser) Parse(data []byte, path string) (map[string]any, error) {
	var raw any

	if len(bytes.TrimSpace(data)) > 0 {
		err := decode(data, path, &raw)
		if err != nil {
			return nil, err
		}
	} else if path != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrSectionNotFound, path)
	}

	switch value := raw.(type) {
	case nil:
		// "d2:" with nothing below it is an empty mapping.
		return make(map[string]any), nil
	case map[string]any:
		return value, nil
	default:
		field := dotted(path)
		if field == "" {
			field = "(document)"
		}

		return nil, &config.TypeMismatchError{Field: field, Expected: "table", Actual: config.TypeName(value)}
	}
}

func decode(data []byte, path string, target any) error {
	if path == "" {
		err := yaml.Unmarshal(data, target)
		if err != nil {
			return syntaxError(err)
		}

		return nil
	}

	pathObj, err := yaml.PathString(convertToYAMLPath(path))
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	err = pathObj.Read(bytes.NewReader(data), target)
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return fmt.Errorf("%w: %s", config.ErrSectionNotFound, path)
		}

		return sectionError(data, path, err)
	}

	return nil
}

// sectionError tells a malformed document apart from a path that runs into a
// scalar, which the path query reports the same way.
func sectionError(data []byte, path string, queryErr error) error {
	var document any

	err := yaml.Unmarshal(data, &document)
	if err != nil {
		return syntaxError(err)
	}

	tree, ok := document.(map[string]any)
	if !ok {
		return &config.TypeMismatchError{Field: "(document)", Expected: "table", Actual: config.TypeName(document)}
	}

	_, err = config.Section(tree, path)
	if err != nil {
		return err
	}

	return fmt.Errorf("reading section %q: %w", path, queryErr)
}

// convertToYAMLPath converts a colon-separated path to goccy/go-yaml PathString format.
// Examples:
//   - "key" -> "$.key"
//   - "preprocessor:d2" -> "$.preprocessor.d2"
func convertToYAMLPath(path string) string {
	return "$." + dotted(path)
}

func dotted(path string) string {
	return strings.ReplaceAll(path, config.SectionSeparator, ".")
}

func syntaxError(err error) *config.SyntaxError {
	result := &config.SyntaxError{Format: Format, Err: err}

	var yamlErr yaml.Error
	if errors.As(err, &yamlErr) {
		if token := yamlErr.GetToken(); token != nil && token.Position != nil {
			result.Line = token.Position.Line
			result.Column = token.Position.Column
		}
	}

	return result
}
