package sync

import (
	"context"
	"fmt"

	"github.com/goliatone/core.io-data-manager/core/model"

	"go.uber.org/zap"
)

// Engine drives reconciliation passes against a model provider.
// Plugins may be nil when no string transform references are used.
type Engine struct {
	provider model.Provider
	plugins  PluginLoader
	logger   *zap.Logger
}

// NewEngine creates a reconciliation engine.
func NewEngine(provider model.Provider, plugins PluginLoader, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		provider: provider,
		plugins:  plugins,
		logger:   logger,
	}
}

// ImportModel runs one reconciliation pass for the identity over the record
// sequence. Records are consumed from the tail of the sequence, so the
// last-parsed record is upserted first.
//
// The pass fails only when the provider cannot resolve a model handle, the
// options are invalid, the truncate operation itself fails, or the context
// is cancelled during a throttle delay. Per-record store failures are
// captured on the session and the batch continues; the returned sequence
// holds the persisted records in processing order. Callers must drain the
// session to discover partial failures.
func (e *Engine) ImportModel(ctx context.Context, session *Session, identity string, records []*model.Record, opts Options) ([]*model.Record, error) {
	m, err := e.provider.Model(ctx, identity)
	if err != nil {
		return nil, err
	}

	op, err := operationFromName(opts.UpdateMethod)
	if err != nil {
		return nil, err
	}

	resolver := opts.Resolver
	if resolver == nil {
		resolver = DefaultResolver()
	}

	l := e.logger.With(
		zap.String("session", session.ID()),
		zap.String("identity", identity),
	)

	session.setInFlight(identity, true)
	var passErrors []*ImportError
	defer func() {
		session.appendErrors(identity, passErrors)
		session.setInFlight(identity, false)
	}()

	records = e.applyTransform(ctx, l, records, opts)

	if opts.Truncate {
		if err := m.Destroy(ctx, model.All()); err != nil {
			return nil, fmt.Errorf("failed to truncate %s: %w", identity, err)
		}
		l.Info("collection truncated before import")
	}

	schema := m.Schema()
	out := make([]*model.Record, 0, len(records))
	processed := 0

	for i := len(records) - 1; i >= 0; i-- {
		rec := records[i]

		Hydrate(schema, rec)

		fields := resolver.ResolveIdentityFields(schema, rec, opts.IdentityFields)
		criteria, err := BuildCriteria(schema, rec, fields)
		if err != nil {
			return nil, err
		}

		// Truncating passes always create, so the resolved operation must
		// say so for error reporting. Empty criteria without truncate
		// proceed with the upsert, which the store may reject or create
		// by default.
		recordOp := op
		if opts.Truncate {
			recordOp = OpCreate
		} else if criteria.IsEmpty() {
			l.Warn("upserting with empty criteria, no identity field had a usable value")
		}

		if n := opts.NumberOfItemsBeforeDelay; n > 0 && processed%n == 0 {
			if err := sleep(ctx, opts.DelayAfterItemBatch); err != nil {
				return nil, err
			}
		}
		if err := sleep(ctx, opts.DelayBetweenItems); err != nil {
			return nil, err
		}

		if opts.Strict {
			pruneUnknownFields(schema, rec)
		}

		persisted, opErr := dispatch(ctx, m, recordOp, criteria, rec)
		if opErr != nil {
			impErr := newImportError(identity, recordOp, criteria, rec, opErr)
			passErrors = append(passErrors, impErr)
			l.Warn("record import failed",
				zap.String("error_id", impErr.ID),
				zap.String("strategy", impErr.Strategy),
				zap.Error(opErr),
			)
			processed++
			continue
		}

		out = append(out, persisted)
		processed++
	}

	l.Info("import pass finished",
		zap.Int("total", len(records)),
		zap.Int("imported", len(out)),
		zap.Int("failed", len(passErrors)),
	)

	return out, nil
}

// applyTransform resolves and applies the batch transform. Plugin
// resolution or transform failures are logged and skipped, never fatal.
func (e *Engine) applyTransform(ctx context.Context, l *zap.Logger, records []*model.Record, opts Options) []*model.Record {
	transform := opts.Transform
	if transform == nil && opts.TransformPlugin != "" {
		if e.plugins == nil {
			l.Warn("transform plugin requested but no plugin loader configured",
				zap.String("plugin", opts.TransformPlugin))
			return records
		}
		loaded, err := e.plugins.Load(opts.TransformPlugin)
		if err != nil {
			l.Warn("failed to load transform plugin, batch proceeds untransformed",
				zap.String("plugin", opts.TransformPlugin),
				zap.Error(err),
			)
			return records
		}
		transform = loaded
	}
	if transform == nil {
		return records
	}

	transformed, err := transform.TransformBatch(ctx, records)
	if err != nil {
		l.Warn("batch transform failed, batch proceeds untransformed", zap.Error(err))
		return records
	}
	return transformed
}

// dispatch runs the per-record store operation.
func dispatch(ctx context.Context, m model.Model, op Operation, criteria model.Criteria, rec *model.Record) (*model.Record, error) {
	if op == OpCreate {
		return m.Create(ctx, rec)
	}
	return m.UpdateOrCreate(ctx, criteria, rec)
}

// pruneUnknownFields removes record fields the schema does not declare.
func pruneUnknownFields(schema *model.Schema, rec *model.Record) {
	for _, field := range rec.Fields() {
		if !schema.Has(field) {
			rec.Delete(field)
		}
	}
}
