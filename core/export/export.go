package export

import (
	"context"
	"fmt"
	"time"

	"github.com/goliatone/core.io-data-manager/core/codec"
	"github.com/goliatone/core.io-data-manager/core/model"

	"go.uber.org/zap"
)

// Populate names an association to load on each exported record, with
// optional criteria filtering the associated rows.
type Populate struct {
	Association string
	Criteria    *model.Criteria
}

// Query describes what to export. The zero value exports the whole
// collection unsorted.
type Query struct {
	// Criteria filters the collection. Empty criteria match everything.
	Criteria model.Criteria

	// Populate lists associations to load.
	Populate []Populate

	// Skip offsets the result set. Zero means no offset.
	Skip int

	// Limit caps the result set. Zero means no limit.
	Limit int

	// Sort orders the result set, e.g. "name ASC".
	Sort string
}

// WriteError reports a failure persisting an export. Fatal to the export
// call.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write export to %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Pipeline wires the model provider to the codec registry.
type Pipeline struct {
	provider model.Provider
	codecs   *codec.Registry
	logger   *zap.Logger
}

// New creates an export pipeline.
func New(provider model.Provider, codecs *codec.Registry, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		provider: provider,
		codecs:   codecs,
		logger:   logger,
	}
}

// Models queries the store for the identity and serializes the matching
// records in the given format. Options pass through to the exporter
// unmodified.
func (p *Pipeline) Models(ctx context.Context, identity string, q Query, format string, opts codec.Options) ([]byte, error) {
	records, err := p.query(ctx, identity, q)
	if err != nil {
		return nil, err
	}

	data, err := p.codecs.Export(format, records, opts)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("export serialized",
		zap.String("identity", identity),
		zap.String("format", format),
		zap.Int("records", len(records)),
	)
	return data, nil
}

// query resolves the model handle and runs the chainable query, applying
// populate, skip, limit and sort in that fixed order.
func (p *Pipeline) query(ctx context.Context, identity string, q Query) ([]*model.Record, error) {
	m, err := p.provider.Model(ctx, identity)
	if err != nil {
		return nil, err
	}

	find := m.Find(q.Criteria)
	for _, pop := range q.Populate {
		if pop.Criteria != nil {
			find = find.Populate(pop.Association, *pop.Criteria)
		} else {
			find = find.Populate(pop.Association)
		}
	}
	if q.Skip > 0 {
		find = find.Skip(q.Skip)
	}
	if q.Limit > 0 {
		find = find.Limit(q.Limit)
	}
	if q.Sort != "" {
		find = find.Sort(q.Sort)
	}

	return find.Exec(ctx)
}

// CreateFileNameFor derives the default export file name,
// <epoch-millis>-<identity>.<format>.
func CreateFileNameFor(identity, format string) string {
	return fmt.Sprintf("%d-%s.%s", time.Now().UnixMilli(), identity, format)
}
