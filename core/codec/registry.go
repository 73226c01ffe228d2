package codec

import (
	"fmt"
	"sync"

	"github.com/goliatone/core.io-data-manager/core/model"
)

// Options carries format-specific knobs, passed through to parsers and
// exporters unmodified.
type Options map[string]any

// Parser turns raw content into an ordered record sequence.
type Parser func(content []byte, opts Options) ([]*model.Record, error)

// Exporter serializes a record collection.
type Exporter func(records []*model.Record, opts Options) ([]byte, error)

// UnsupportedFormatError reports a format tag with no registered codec.
type UnsupportedFormatError struct {
	Format string
	// Direction is "parse" or "export".
	Direction string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("no %s codec registered for format %q", e.Direction, e.Format)
}

// Registry holds the format tag to codec mapping. Safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	parsers   map[string]Parser
	exporters map[string]Exporter
}

// NewRegistry returns a registry with the built-in csv, tsv and json codecs
// registered.
func NewRegistry() *Registry {
	r := &Registry{
		parsers:   make(map[string]Parser),
		exporters: make(map[string]Exporter),
	}

	r.RegisterParser("csv", parseDelimited(','))
	r.RegisterParser("tsv", parseDelimited('\t'))
	r.RegisterParser("json", parseJSON)

	r.RegisterExporter("csv", exportDelimited(','))
	r.RegisterExporter("tsv", exportDelimited('\t'))
	r.RegisterExporter("json", exportJSON)

	return r
}

// RegisterParser registers or replaces the parser for a format tag.
func (r *Registry) RegisterParser(format string, fn Parser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parsers[format] = fn
}

// RegisterExporter registers or replaces the exporter for a format tag.
func (r *Registry) RegisterExporter(format string, fn Exporter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exporters[format] = fn
}

// Formats returns the tags with a registered parser.
func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.parsers))
	for tag := range r.parsers {
		out = append(out, tag)
	}
	return out
}

// Parse decodes content with the parser registered for format.
func (r *Registry) Parse(format string, content []byte, opts Options) ([]*model.Record, error) {
	r.mu.RLock()
	fn, ok := r.parsers[format]
	r.mu.RUnlock()
	if !ok {
		return nil, &UnsupportedFormatError{Format: format, Direction: "parse"}
	}
	return fn(content, opts)
}

// Export serializes records with the exporter registered for format.
func (r *Registry) Export(format string, records []*model.Record, opts Options) ([]byte, error) {
	r.mu.RLock()
	fn, ok := r.exporters[format]
	r.mu.RUnlock()
	if !ok {
		return nil, &UnsupportedFormatError{Format: format, Direction: "export"}
	}
	return fn(records, opts)
}
