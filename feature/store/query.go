package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/core.io-data-manager/core/model"

	"gorm.io/gorm/clause"
)

// populate is one pending association load.
type populate struct {
	association string
	criteria    *model.Criteria
}

// storeQuery is the chainable query over one entity table. Implements
// model.Query. Nothing touches the database until Exec.
type storeQuery struct {
	model     *storeModel
	criteria  model.Criteria
	populates []populate
	skip      int
	limit     int
	sort      string
}

func (q *storeQuery) Populate(association string, criteria ...model.Criteria) model.Query {
	p := populate{association: association}
	if len(criteria) > 0 {
		c := criteria[0]
		p.criteria = &c
	}
	q.populates = append(q.populates, p)
	return q
}

func (q *storeQuery) Skip(n int) model.Query {
	q.skip = n
	return q
}

func (q *storeQuery) Limit(n int) model.Query {
	q.limit = n
	return q
}

func (q *storeQuery) Sort(order string) model.Query {
	q.sort = order
	return q
}

// Exec runs the query: criteria, offset, limit and sort happen in SQL,
// association population runs as one follow-up query per association.
func (q *storeQuery) Exec(ctx context.Context) ([]*model.Record, error) {
	tx := applyCriteria(q.model.db.WithContext(ctx).Table(q.model.table), q.criteria)
	if q.skip > 0 {
		tx = tx.Offset(q.skip)
	}
	if q.limit > 0 {
		tx = tx.Limit(q.limit)
	}
	if q.sort != "" {
		order, err := orderClause(q.model.schema, q.sort)
		if err != nil {
			return nil, err
		}
		tx = tx.Order(order)
	}

	var rows []map[string]any
	if err := tx.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", q.model.identity, err)
	}

	records := make([]*model.Record, len(rows))
	for i, row := range rows {
		records[i] = model.RecordFromMap(row)
	}

	for _, p := range q.populates {
		if err := q.populateAssociation(ctx, records, p); err != nil {
			return nil, err
		}
	}
	return records, nil
}

// orderClause validates a sort expression against the schema and builds the
// ORDER BY clause from its parts. Sort strings arrive unsanitized from CLI
// flags and HTTP query params; only a declared column name with an optional
// ASC/DESC direction is accepted, never raw SQL.
func orderClause(schema *model.Schema, sort string) (clause.OrderByColumn, error) {
	parts := strings.Fields(sort)
	if len(parts) == 0 || len(parts) > 2 {
		return clause.OrderByColumn{}, &model.InvalidSortError{Sort: sort}
	}
	column := parts[0]
	if !schema.Has(column) {
		return clause.OrderByColumn{}, &model.InvalidSortError{Sort: sort}
	}

	desc := false
	if len(parts) == 2 {
		switch strings.ToUpper(parts[1]) {
		case "ASC":
		case "DESC":
			desc = true
		default:
			return clause.OrderByColumn{}, &model.InvalidSortError{Sort: sort}
		}
	}
	return clause.OrderByColumn{
		Column: clause.Column{Name: column},
		Desc:   desc,
	}, nil
}

// populateAssociation loads a belongs-to association by convention: each
// record's "<association>_id" is matched against the related entity's "id"
// and the related record is attached under the association name. The
// related entity must be registered with the same provider.
func (q *storeQuery) populateAssociation(ctx context.Context, records []*model.Record, p populate) error {
	related, err := q.model.provider.Model(ctx, p.association)
	if err != nil {
		return fmt.Errorf("failed to populate %q: %w", p.association, err)
	}

	fk := p.association + "_id"
	ids := make([]any, 0, len(records))
	seen := make(map[any]struct{}, len(records))
	for _, rec := range records {
		if id, ok := rec.Get(fk); ok && id != nil {
			if _, dup := seen[id]; !dup {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}
	if len(ids) == 0 {
		return nil
	}

	clauses := make([]model.Clause, len(ids))
	for i, id := range ids {
		clauses[i] = model.Clause{Field: "id", Value: id}
	}
	find := related.Find(model.AnyOf(clauses...))
	relatedRecords, err := find.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to populate %q: %w", p.association, err)
	}

	matches := func(rec *model.Record) bool { return true }
	if p.criteria != nil && !p.criteria.IsEmpty() {
		criteria := *p.criteria
		matches = func(rec *model.Record) bool {
			for _, cl := range criteria.Clauses {
				if v, ok := rec.Get(cl.Field); ok && fmt.Sprint(v) == fmt.Sprint(cl.Value) {
					return true
				}
			}
			return false
		}
	}

	byID := make(map[string]*model.Record, len(relatedRecords))
	for _, rel := range relatedRecords {
		if !matches(rel) {
			continue
		}
		if id, ok := rel.Get("id"); ok {
			byID[fmt.Sprint(id)] = rel
		}
	}

	for _, rec := range records {
		if id, ok := rec.Get(fk); ok && id != nil {
			if rel, found := byID[fmt.Sprint(id)]; found {
				rec.Set(p.association, rel)
			}
		}
	}
	return nil
}
