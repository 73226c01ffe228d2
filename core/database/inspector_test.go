package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTableColumns(t *testing.T) {
	// Setup In-Memory DB
	cfg := Config{
		Driver: "sqlite",
		Name:   ":memory:",
	}
	db, err := Connect(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, db)

	// Create a test table
	// SQLite specific types: INTEGER, TEXT.
	err = db.Exec("CREATE TABLE test_items (id INTEGER PRIMARY KEY, name TEXT, description TEXT)").Error
	assert.NoError(t, err)

	// Test GetTableColumns
	columns, err := GetTableColumns(db, "test_items")
	assert.NoError(t, err)
	assert.Len(t, columns, 3)

	// Map columns to map for easy assertion
	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}

	assert.Equal(t, "integer", colMap["id"])
	assert.Equal(t, "text", colMap["name"])
	assert.Equal(t, "text", colMap["description"])

	// Test non-existent table
	cols, err := GetTableColumns(db, "non_existent")
	// PRAGMA table_info returns empty result for non-existent table in SQLite, implies no error but empty columns
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestGetTableColumns_KeysAndDefaults(t *testing.T) {
	cfg := Config{
		Driver: "sqlite",
		Name:   ":memory:",
	}
	db, err := Connect(cfg)
	assert.NoError(t, err)

	err = db.Exec(`CREATE TABLE users (
		id INTEGER PRIMARY KEY,
		email TEXT UNIQUE,
		status TEXT DEFAULT 'active',
		first_name TEXT,
		last_name TEXT
	)`).Error
	assert.NoError(t, err)
	// Multi-column unique indexes do not identify a row by one field
	err = db.Exec("CREATE UNIQUE INDEX users_full_name ON users (first_name, last_name)").Error
	assert.NoError(t, err)

	columns, err := GetTableColumns(db, "users")
	assert.NoError(t, err)
	assert.Len(t, columns, 5)

	byName := make(map[string]ColumnInfo)
	for _, col := range columns {
		byName[col.Field] = col
	}

	assert.Equal(t, "PRI", byName["id"].Key)
	assert.True(t, byName["id"].IsUnique())

	assert.Equal(t, "UNI", byName["email"].Key)
	assert.True(t, byName["email"].IsUnique())

	assert.False(t, byName["first_name"].IsUnique())
	assert.False(t, byName["last_name"].IsUnique())

	if assert.NotNil(t, byName["status"].Default) {
		assert.Equal(t, "'active'", *byName["status"].Default)
	}
	assert.Nil(t, byName["email"].Default)
}
