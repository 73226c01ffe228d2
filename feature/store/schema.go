package store

import (
	"strings"

	"github.com/goliatone/core.io-data-manager/core/database"
	"github.com/goliatone/core.io-data-manager/core/model"
	"github.com/goliatone/core.io-data-manager/core/utils"
)

// deriveSchema maps inspected table columns onto an entity schema. Key
// flags become unique identity fields; column defaults become hydration
// defaults, cast to the field type.
func deriveSchema(columns []database.ColumnInfo) *model.Schema {
	schema := model.NewSchema()
	for _, col := range columns {
		fieldType := fieldTypeFor(col.Type)
		def := model.FieldDef{
			Type:   fieldType,
			Unique: col.IsUnique(),
		}
		if col.Default != nil {
			def.DefaultsTo = castDefault(fieldType, *col.Default)
		}
		schema.AddField(col.Field, def)
	}
	return schema
}

// fieldTypeFor maps a SQL column type string onto a schema field type.
// Unrecognized types fall back to text so criteria casting stays safe.
func fieldTypeFor(sqlType string) model.FieldType {
	t := strings.ToLower(sqlType)
	switch {
	case t == "tinyint(1)" || strings.HasPrefix(t, "bool"):
		return model.FieldBoolean
	case strings.Contains(t, "int"):
		return model.FieldInteger
	case strings.Contains(t, "float"), strings.Contains(t, "double"),
		strings.Contains(t, "decimal"), strings.Contains(t, "real"),
		strings.Contains(t, "numeric"):
		return model.FieldFloat
	case strings.Contains(t, "date"), strings.Contains(t, "time"):
		return model.FieldDatetime
	case strings.Contains(t, "json"):
		return model.FieldJSON
	default:
		return model.FieldText
	}
}

// castDefault converts the column default literal to the field's scalar
// type. Datetime defaults like CURRENT_TIMESTAMP are expressions the store
// evaluates itself, so they are not hydrated into records.
func castDefault(t model.FieldType, literal string) any {
	switch t {
	case model.FieldInteger:
		return utils.ToInt(literal)
	case model.FieldFloat:
		return utils.ToFloat(literal)
	case model.FieldBoolean:
		return utils.ToBool(literal)
	case model.FieldDatetime:
		return nil
	default:
		return strings.Trim(literal, "'\"")
	}
}

// castForStorage converts record values to the declared field types,
// returning the column/value map handed to gorm. Fields the schema does
// not declare pass through untouched; nils stay nil.
func castForStorage(schema *model.Schema, rec *model.Record) map[string]any {
	values := make(map[string]any, rec.Len())
	for _, field := range rec.Fields() {
		value, _ := rec.Get(field)
		def, ok := schema.Field(field)
		if !ok || value == nil {
			values[field] = value
			continue
		}
		switch def.Type {
		case model.FieldInteger:
			values[field] = utils.ToInt(value)
		case model.FieldFloat:
			values[field] = utils.ToFloat(value)
		case model.FieldBoolean:
			values[field] = utils.ToBool(value)
		case model.FieldText, model.FieldString:
			values[field] = utils.ToString(value)
		default:
			values[field] = value
		}
	}
	return values
}
