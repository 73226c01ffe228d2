// Package sync implements the record reconciliation engine: the component
// that turns parsed records into targeted upsert operations against a model
// store.
//
// A reconciliation pass runs per entity identity over a record sequence.
// Each record is hydrated with schema defaults, identity fields are resolved,
// a disjunctive lookup criteria is built, the import stream is throttled, and
// the upsert is dispatched. A single record failure never aborts the batch;
// per-record errors accumulate on the caller-owned Session and are read back
// through its Drain operation.
//
// # Session
//
// All pass-spanning state (outstanding errors, in-flight tracking) lives on
// an explicit Session owned by the caller:
//
//	session := sync.NewSession()
//	out, err := engine.ImportModel(ctx, session, "user", records, opts)
//	for _, impErr := range session.Drain("user") { ... }
//
// Passes for different identities may run concurrently on one session;
// concurrent passes for the same identity are a caller error.
//
// # Ordering
//
// Records are processed in reverse of arrival order: the engine consumes
// from the tail of the sequence, so the last-parsed record is upserted
// first. Callers that need arrival order must pre-reverse their input.
package sync
