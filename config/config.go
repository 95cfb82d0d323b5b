package config

import (
	"fmt"

	"github.com/0xalexb/skifta/workspace"
)

// Parser deserializes the raw configuration document into a target
// structure. See config/parser/json for the production implementation.
type Parser interface {
	Parse(data []byte, target any) error
}

// DataFetcher reads the raw configuration document. See config/fetcher/file
// for the production implementation.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Load runs the full pipeline: fetch the document, parse it into the loose
// Raw form, then validate and assemble it against the workspace. Callers
// that already hold a Raw can call Parse directly.
func Load(fetcher DataFetcher, parser Parser, ws *workspace.Workspace, opts ...Option) (*Resolved, error) {
	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("reading release config: %w", err)
	}

	raw := &Raw{}

	err = parser.Parse(data, raw)
	if err != nil {
		return nil, fmt.Errorf("parsing release config: %w", err)
	}

	return Parse(raw, ws, opts...)
}
