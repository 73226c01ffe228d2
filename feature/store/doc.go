// Package store implements the model provider on top of a GORM connection.
//
// Entities register a Definition mapping their identity to a table. The
// schema is either declared explicitly or derived from the inspected table
// columns: primary and unique keys become unique identity fields, column
// defaults become hydration defaults, and SQL types map onto the field
// types the criteria builder casts against.
//
// Derived schemas are cached per identity with a TTL and built under
// singleflight, so concurrent passes do not stampede the database with
// introspection queries.
package store
