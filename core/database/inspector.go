package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo matches the output of SHOW COLUMNS.
type ColumnInfo struct {
	Field   string
	Type    string
	Null    string
	Key     string
	Default *string // Pointer because NULL default is possible
	Extra   string
}

// IsUnique reports whether the column carries a primary or unique key.
func (c ColumnInfo) IsUnique() bool {
	return c.Key == "PRI" || c.Key == "UNI"
}

// GetTableColumns retrieves the column definitions for a given table.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	if db.Dialector.Name() == "sqlite" {
		return sqliteTableColumns(db, tableName)
	}

	// Raw "SHOW COLUMNS" rather than Migrator().ColumnTypes() to get the
	// exact MySQL type strings and key flags.
	var columns []ColumnInfo
	err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", tableName)).Scan(&columns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}
	// Normalize names and types to lowercase
	for i := range columns {
		columns[i].Type = strings.ToLower(columns[i].Type)
		columns[i].Field = strings.ToLower(columns[i].Field)
	}
	return columns, nil
}

// sqliteTableColumns inspects a table via PRAGMA statements, mapping the
// results onto the SHOW COLUMNS shape: pk columns get Key "PRI" and
// single-column unique indexes get Key "UNI".
func sqliteTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	type sqliteColumn struct {
		Cid       int
		Name      string
		Type      string
		Notnull   int
		DfltValue *string `gorm:"column:dflt_value"`
		Pk        int
	}
	var sqliteCols []sqliteColumn
	if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", tableName)).Scan(&sqliteCols).Error; err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}

	unique, err := sqliteUniqueColumns(db, tableName)
	if err != nil {
		return nil, err
	}

	columns := make([]ColumnInfo, 0, len(sqliteCols))
	for _, col := range sqliteCols {
		info := ColumnInfo{
			Field:   strings.ToLower(col.Name),
			Type:    strings.ToLower(col.Type),
			Default: col.DfltValue,
		}
		if col.Notnull == 0 {
			info.Null = "YES"
		} else {
			info.Null = "NO"
		}
		switch {
		case col.Pk > 0:
			info.Key = "PRI"
		case unique[info.Field]:
			info.Key = "UNI"
		}
		columns = append(columns, info)
	}
	return columns, nil
}

// sqliteUniqueColumns returns the set of columns covered by a single-column
// unique index. Multi-column unique indexes do not identify a row by one
// field, so they are skipped.
func sqliteUniqueColumns(db *gorm.DB, tableName string) (map[string]bool, error) {
	type indexInfo struct {
		Seq     int
		Name    string
		Unique  int
		Origin  string
		Partial int
	}
	var indexes []indexInfo
	if err := db.Raw(fmt.Sprintf("PRAGMA index_list('%s')", tableName)).Scan(&indexes).Error; err != nil {
		return nil, fmt.Errorf("failed to list indexes for table %s: %w", tableName, err)
	}

	unique := make(map[string]bool)
	for _, idx := range indexes {
		if idx.Unique == 0 {
			continue
		}
		type indexColumn struct {
			Seqno int
			Cid   int
			Name  string
		}
		var cols []indexColumn
		if err := db.Raw(fmt.Sprintf("PRAGMA index_info('%s')", idx.Name)).Scan(&cols).Error; err != nil {
			return nil, fmt.Errorf("failed to inspect index %s: %w", idx.Name, err)
		}
		if len(cols) == 1 {
			unique[strings.ToLower(cols[0].Name)] = true
		}
	}
	return unique, nil
}
