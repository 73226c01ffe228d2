package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goliatone/core.io-data-manager/core/database"
	"github.com/goliatone/core.io-data-manager/core/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Definition maps an entity identity onto a table.
type Definition struct {
	// Identity is the entity name clients resolve handles for.
	Identity string

	// Table is the backing table. Empty defaults to the identity.
	Table string

	// Schema declares the field catalog explicitly. Nil derives the
	// schema from the inspected table columns.
	Schema *model.Schema
}

// Provider resolves entity identities to gorm-backed model handles.
// Implements model.Provider.
type Provider struct {
	db     *gorm.DB
	logger *zap.Logger

	mu          sync.RWMutex
	definitions map[string]Definition

	schemas *schemaCache
}

// NewProvider creates a provider. schemaTTL bounds how long derived schemas
// are reused before the table is inspected again; zero disables caching.
func NewProvider(db *gorm.DB, logger *zap.Logger, schemaTTL time.Duration) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{
		db:          db,
		logger:      logger,
		definitions: make(map[string]Definition),
		schemas:     newSchemaCache(schemaTTL),
	}
}

// Register makes an entity resolvable. Re-registering an identity replaces
// its definition and invalidates any cached schema.
func (p *Provider) Register(def Definition) {
	if def.Table == "" {
		def.Table = def.Identity
	}
	p.mu.Lock()
	p.definitions[def.Identity] = def
	p.mu.Unlock()
	p.schemas.invalidate(def.Identity)
}

// Identities returns the registered entity names.
func (p *Provider) Identities() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]string, 0, len(p.definitions))
	for identity := range p.definitions {
		out = append(out, identity)
	}
	return out
}

// Model resolves the handle for an identity, deriving and caching the
// schema on first use. Unknown identities fail with *model.NotFoundError.
func (p *Provider) Model(ctx context.Context, identity string) (model.Model, error) {
	p.mu.RLock()
	def, ok := p.definitions[identity]
	p.mu.RUnlock()
	if !ok {
		return nil, &model.NotFoundError{Identity: identity}
	}

	schema := def.Schema
	if schema == nil {
		derived, err := p.schemas.get(identity, func() (*model.Schema, error) {
			columns, err := database.GetTableColumns(p.db, def.Table)
			if err != nil {
				return nil, fmt.Errorf("failed to inspect table %s: %w", def.Table, err)
			}
			if len(columns) == 0 {
				return nil, fmt.Errorf("table %s has no columns", def.Table)
			}
			return deriveSchema(columns), nil
		})
		if err != nil {
			return nil, err
		}
		schema = derived
	}

	return &storeModel{
		provider: p,
		db:       p.db,
		identity: identity,
		table:    def.Table,
		schema:   schema,
		logger:   p.logger,
	}, nil
}
