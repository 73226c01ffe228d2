package model

import "context"

// Query is the chainable, lazy read operation returned by Model.Find.
// Clause methods return the query to allow chaining; nothing touches the
// store until Exec.
type Query interface {
	// Populate loads the named association on each returned record. The
	// optional criteria filter which associated rows are loaded.
	Populate(association string, criteria ...Criteria) Query

	// Skip offsets the result set.
	Skip(n int) Query

	// Limit caps the result set.
	Limit(n int) Query

	// Sort orders the result set, e.g. "name ASC" or "created_at DESC".
	Sort(order string) Query

	// Exec runs the query and yields the matching records.
	Exec(ctx context.Context) ([]*Record, error)
}

// Model is the handle for one entity collection in the persistent store.
type Model interface {
	// Identity is the entity name this handle was resolved for.
	Identity() string

	// Schema returns the entity's field catalog. Read-only to callers.
	Schema() *Schema

	// Find starts a chainable query.
	Find(criteria Criteria) Query

	// Create inserts a record and returns the persisted row.
	Create(ctx context.Context, rec *Record) (*Record, error)

	// UpdateOrCreate updates the first row matching criteria with the
	// record's values, or inserts the record when nothing matches. Returns
	// the persisted row.
	UpdateOrCreate(ctx context.Context, criteria Criteria, rec *Record) (*Record, error)

	// Destroy deletes all rows matching criteria.
	Destroy(ctx context.Context, criteria Criteria) error
}

// Provider resolves entity identities to model handles. Implementations own
// connection management and schema discovery.
type Provider interface {
	// Model returns the handle for the identity, or a *NotFoundError when
	// the identity is unknown.
	Model(ctx context.Context, identity string) (Model, error)
}
