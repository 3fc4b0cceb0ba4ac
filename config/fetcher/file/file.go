package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements config.DataFetcher interface for file-based configuration documents.
// The document is read once, at construction, and served from memory afterwards.
//
// A file that exists but holds nothing, or only whitespace and comments, is a
// valid document: Fetch hands its bytes over unchanged, every parser turns
// them into an empty tree, and acceptance fills each field from its default.
// Only a path that cannot be read as a regular file fails.
type Fetcher struct {
	path string
	data []byte
}

// NewFetcher returns a constructor function that reads the document at fpath.
// The constructor shape lets an Fx container decide when the file is read.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		return Open(fpath)
	}
}

// Open reads the document at fpath immediately. A missing file or a
// directory is an error; an empty file is not, it yields the all-defaults
// configuration once accepted.
func Open(fpath string) (*Fetcher, error) {
	cleanPath := filepath.Clean(fpath)

	stat, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
	}

	return &Fetcher{
		path: cleanPath,
		data: data,
	}, nil
}

// Path returns the cleaned path the document was read from.
func (f *Fetcher) Path() string {
	return f.path
}

// Fetch returns a copy of the document read at construction time.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
