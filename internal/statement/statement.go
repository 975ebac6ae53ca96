// Package statement extracts raw transactions from bank statement
// documents. Each supported document format registers a Parser; the
// categorization engine consumes the parsers' output unchanged.
package statement

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/bankcat-dev/bankcat/internal/model"
)

// Parser converts a statement document into raw transactions.
type Parser interface {
	Parse(r io.Reader) ([]model.RawTransaction, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CSVParser{})
	r.Register(&PDFParser{})
	return r
}

// Detect maps a statement file path to a parser format by extension.
func Detect(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "pdf", nil
	case ".csv":
		return "csv", nil
	default:
		return "", fmt.Errorf("unsupported statement type %q", filepath.Ext(path))
	}
}
