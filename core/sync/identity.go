package sync

import "github.com/goliatone/core.io-data-manager/core/model"

// IdentityResolver decides which fields uniquely identify an existing row
// for a candidate record. The engine calls this as a pluggable strategy;
// the record's values are not consulted here, only downstream by the
// criteria builder.
type IdentityResolver interface {
	ResolveIdentityFields(schema *model.Schema, rec *model.Record, base []string) []string
}

// defaultResolver implements the stock resolution: base fields first, then
// schema-declared unique fields.
type defaultResolver struct{}

// DefaultResolver returns the stock identity resolution strategy.
func DefaultResolver() IdentityResolver {
	return defaultResolver{}
}

func (defaultResolver) ResolveIdentityFields(schema *model.Schema, _ *model.Record, base []string) []string {
	return ResolveIdentityFields(schema, base)
}

// ResolveIdentityFields unions the base field set with schema-declared
// unique fields. Base order is preserved, schema fields are appended in
// declaration order, first occurrence wins. Pure function of schema and
// base fields.
func ResolveIdentityFields(schema *model.Schema, base []string) []string {
	fields := make([]string, 0, len(base))
	seen := make(map[string]struct{}, len(base))

	for _, f := range base {
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		fields = append(fields, f)
	}

	if schema == nil {
		return fields
	}
	for _, name := range schema.Fields() {
		def, _ := schema.Field(name)
		if !def.Unique {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		fields = append(fields, name)
	}
	return fields
}
