package sync

import "github.com/goliatone/core.io-data-manager/core/model"

// Hydrate fills schema-declared defaults into the record for every field
// the record does not already carry. Producer defaults are invoked per
// record; literal defaults are assigned as-is. Explicit values, including
// explicit nils, are never overwritten.
//
// Runs once per record before identity resolution, so identity fields
// populated only via defaults still qualify for criteria construction.
func Hydrate(schema *model.Schema, rec *model.Record) *model.Record {
	if schema == nil {
		return rec
	}
	for _, name := range schema.Fields() {
		def, _ := schema.Field(name)
		if !def.HasDefault() || rec.Has(name) {
			continue
		}
		if def.DefaultFunc != nil {
			rec.Set(name, def.DefaultFunc())
			continue
		}
		rec.Set(name, def.DefaultsTo)
	}
	return rec
}
