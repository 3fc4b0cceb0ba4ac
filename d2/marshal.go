package d2

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// Tree renders c as a generic document tree keyed by document keys.
// Absent optional fields are omitted; Accept(c.Tree()) equals c.
func (c Config) Tree() map[string]any {
	return configSchema.Tree(c)
}

// MarshalTOML renders c in the TOML document format.
func (c Config) MarshalTOML() ([]byte, error) {
	data, err := toml.Marshal(c.Tree())
	if err != nil {
		return nil, fmt.Errorf("marshal toml: %w", err)
	}

	return data, nil
}

// MarshalYAML renders c as a YAML document using the same keys.
func (c Config) MarshalYAML() ([]byte, error) {
	data, err := yaml.Marshal(c.Tree())
	if err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}

	return data, nil
}
