package las

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Read parses the LAS file at path.
func Read(path string, opts ...Option) (*Document, error) {
	return NewParser(opts...).ParseFile(path)
}

// ReadFrom parses a LAS document from r.
func ReadFrom(r io.Reader, opts ...Option) (*Document, error) {
	return NewParser(opts...).ParseDocument(r)
}

// ReadString parses a LAS document held in memory.
func ReadString(s string, opts ...Option) (*Document, error) {
	return NewParser(opts...).ParseDocument(strings.NewReader(s))
}

// ParseFile opens and parses a LAS file.
func (p *Parser) ParseFile(path string) (*Document, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	doc, err := p.ParseDocument(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
