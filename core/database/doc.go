// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to
// properly configure MySQL and SQLite connections based on the application's
// configuration.
//
// # Connect
//
// The generic Connect function establishes a connection to the database.
// The configured driver selects the dialect; sqlite with Name ":memory:"
// gives an in-memory database, used by tests.
//
// # Schema Inspection
//
// The package includes tools to inspect the database schema. The model
// provider derives entity schemas from the inspected columns: key flags map
// to unique identity fields and column defaults map to hydration defaults.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "users")
package database
