// Package model defines the data types shared between the codec layer, the
// reconciliation engine, and the export pipeline: ordered records, entity
// schemas, lookup criteria, and the Model/Provider interfaces that abstract
// the persistent store.
//
// The package holds no behavior beyond value manipulation; concrete store
// implementations live under feature/store.
package model
