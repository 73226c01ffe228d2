package sync

import (
	"fmt"

	"github.com/goliatone/core.io-data-manager/core/model"
	"github.com/goliatone/core.io-data-manager/core/utils"
)

// BuildCriteria turns resolved identity fields and record values into a
// lookup expression: one field-equality clause per identity field holding a
// non-empty value, collapsed to a single equality when only one clause
// remains.
//
// Values for textual schema fields are coerced to their string form and
// written back into the record, so the persisted record stays consistent
// with the query. Nil values are never coerced. Fields whose value is
// absent, nil or the empty string contribute no clause; when every field
// filters out the result is empty criteria, handled by the engine's
// empty-criteria policy.
//
// Fails with *ConfigurationError when identityFields is empty or references
// a field the schema does not declare.
func BuildCriteria(schema *model.Schema, rec *model.Record, identityFields []string) (model.Criteria, error) {
	if len(identityFields) == 0 {
		return model.Criteria{}, &ConfigurationError{Reason: "no identity fields configured"}
	}

	var clauses []model.Clause
	for _, field := range identityFields {
		def, ok := schema.Field(field)
		if !ok {
			return model.Criteria{}, &ConfigurationError{
				Reason: fmt.Sprintf("identity field %q is not part of the schema", field),
			}
		}

		value, present := rec.Get(field)
		if !present {
			continue
		}

		if def.Type.IsTextual() && value != nil {
			coerced := utils.ToString(value)
			rec.Set(field, coerced)
			value = coerced
		}

		if utils.IsEmpty(value) {
			continue
		}
		clauses = append(clauses, model.Clause{Field: field, Value: value})
	}

	return model.AnyOf(clauses...), nil
}
