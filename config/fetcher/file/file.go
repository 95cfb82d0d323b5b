package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// RelPath is the fixed workspace-relative location of the release
// configuration document.
const RelPath = ".skifta/config.json"

// ErrPathIsDirectory is returned when the resolved document path points to a
// directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements config.DataFetcher for the on-disk configuration
// document. The document is read at construction time and cached.
type Fetcher struct {
	path string
	data []byte
}

// NewFetcher returns a constructor function that creates a Fetcher for the
// workspace rooted at root, resolving the document at RelPath beneath it.
// The constructor-function shape is Fx-friendly, letting the DI container
// control when the read happens. Construction fails if the document cannot
// be read.
func NewFetcher(root string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		path := filepath.Clean(filepath.Join(root, RelPath))

		stat, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat release config %q: %w", path, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", path, ErrPathIsDirectory)
		}

		data, err := os.ReadFile(path) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading release config %q: %w", path, err)
		}

		return &Fetcher{
			path: path,
			data: data,
		}, nil
	}
}

// Fetch returns a copy of the cached document that was read at construction
// time. A copy is returned to prevent callers from mutating the cache.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
