package d2conf

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/0xalexb/d2conf/config"
	jsoncparser "github.com/0xalexb/d2conf/config/parser/jsonc"
	tomlparser "github.com/0xalexb/d2conf/config/parser/toml"
	yamlparser "github.com/0xalexb/d2conf/config/parser/yaml"
)

// Document formats understood by NewParser.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ErrUnknownFormat is returned when no parser matches the requested format or file extension.
var ErrUnknownFormat = errors.New("unknown configuration format")

// DetectFormat maps a file extension to a document format.
// Files without a recognized extension are treated as TOML.
func DetectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json", ".jsonc":
		return FormatJSON
	default:
		return FormatTOML
	}
}

// NewParser returns the parser for format. An empty format is detected from path.
//
//nolint:ireturn // callers only need the config.Parser behaviour
func NewParser(format, path string) (config.Parser, error) {
	if format == "" {
		format = DetectFormat(path)
	}

	switch strings.ToLower(format) {
	case FormatTOML:
		return tomlparser.NewParser(), nil
	case FormatYAML, "yml":
		return yamlparser.NewParser(), nil
	case FormatJSON, "jsonc":
		return jsoncparser.NewParser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
