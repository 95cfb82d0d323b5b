package json

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input document is empty.
var ErrEmptyData = errors.New("empty data")

// Parser implements config.Parser for the JSON configuration document.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses the document and unmarshals it into the target.
func (p *Parser) Parse(data []byte, target any) error {
	if len(data) == 0 {
		return ErrEmptyData
	}

	err := yaml.Unmarshal(data, target)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}
