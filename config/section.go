package config

import (
	"fmt"
	"strings"
)

// SectionSeparator separates nested keys in a section path.
const SectionSeparator = ":"

// Section walks tree along a colon-separated path and returns the table found there.
// Parsers share it so every format navigates sections the same way.
func Section(tree map[string]any, path string) (map[string]any, error) {
	if path == "" {
		return tree, nil
	}

	current := tree
	walked := make([]string, 0, strings.Count(path, SectionSeparator)+1)

	for _, key := range strings.Split(path, SectionSeparator) {
		walked = append(walked, key)

		value, ok := current[key]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrSectionNotFound, path)
		}

		table, ok := value.(map[string]any)
		if !ok {
			return nil, &TypeMismatchError{
				Field:    strings.Join(walked, "."),
				Expected: "table",
				Actual:   TypeName(value),
			}
		}

		current = table
	}

	return current, nil
}
