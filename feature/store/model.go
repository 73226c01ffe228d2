package store

import (
	"context"
	"fmt"

	"github.com/goliatone/core.io-data-manager/core/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// storeModel is the gorm-backed handle for one entity. Implements
// model.Model.
type storeModel struct {
	provider *Provider
	db       *gorm.DB
	identity string
	table    string
	schema   *model.Schema
	logger   *zap.Logger
}

func (m *storeModel) Identity() string {
	return m.identity
}

func (m *storeModel) Schema() *model.Schema {
	return m.schema
}

func (m *storeModel) Find(criteria model.Criteria) model.Query {
	return &storeQuery{model: m, criteria: criteria}
}

// Create inserts the record and returns the persisted row with values cast
// to the schema's storage types.
func (m *storeModel) Create(ctx context.Context, rec *model.Record) (*model.Record, error) {
	values := castForStorage(m.schema, rec)
	tx := m.db.WithContext(ctx).Table(m.table).Create(values)
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to create %s record: %w", m.identity, tx.Error)
	}
	return model.RecordFromMap(values), nil
}

// UpdateOrCreate updates the rows matching criteria with the record's
// values, or inserts when nothing matches. Empty criteria create by
// default, matching the engine's empty-criteria policy.
func (m *storeModel) UpdateOrCreate(ctx context.Context, criteria model.Criteria, rec *model.Record) (*model.Record, error) {
	if criteria.IsEmpty() {
		return m.Create(ctx, rec)
	}

	values := castForStorage(m.schema, rec)

	var existing []map[string]any
	tx := applyCriteria(m.db.WithContext(ctx).Table(m.table), criteria).Limit(1).Find(&existing)
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to look up %s record: %w", m.identity, tx.Error)
	}
	if len(existing) == 0 {
		return m.Create(ctx, rec)
	}

	tx = applyCriteria(m.db.WithContext(ctx).Table(m.table), criteria).Updates(values)
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to update %s record: %w", m.identity, tx.Error)
	}

	// The persisted row is the existing one with the update applied.
	merged := existing[0]
	for k, v := range values {
		merged[k] = v
	}
	m.logger.Debug("record updated",
		zap.String("identity", m.identity),
		zap.String("criteria", criteria.String()),
		zap.Int64("rows", tx.RowsAffected),
	)
	return model.RecordFromMap(merged), nil
}

// Destroy deletes the rows matching criteria. Empty criteria clear the
// whole collection.
func (m *storeModel) Destroy(ctx context.Context, criteria model.Criteria) error {
	tx := m.db.WithContext(ctx).Table(m.table)
	if criteria.IsEmpty() {
		// gorm refuses a global delete without a condition.
		tx = tx.Where("1 = 1")
	} else {
		tx = applyCriteria(tx, criteria)
	}
	if err := tx.Delete(nil).Error; err != nil {
		return fmt.Errorf("failed to destroy %s records: %w", m.identity, err)
	}
	return nil
}

// applyCriteria translates a criteria expression into gorm clauses.
func applyCriteria(tx *gorm.DB, criteria model.Criteria) *gorm.DB {
	if criteria.IsEmpty() {
		return tx
	}
	for i, clause := range criteria.Clauses {
		cond := fmt.Sprintf("`%s` = ?", clause.Field)
		if i == 0 {
			tx = tx.Where(cond, clause.Value)
		} else {
			tx = tx.Or(cond, clause.Value)
		}
	}
	return tx
}
