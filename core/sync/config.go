package sync

import (
	"strings"
	"time"
)

// Config holds the import defaults applied when a caller does not set them
// explicitly. Embedded into the application configuration under "import".
type Config struct {
	// IdentityFields is the comma-separated base identity field set.
	IdentityFields string `mapstructure:"identity_fields" default:"id,uuid"`
	// Strict drops record fields the schema does not declare.
	Strict bool `mapstructure:"strict" default:"false"`
	// UpdateMethod names the default upsert operation.
	UpdateMethod string `mapstructure:"update_method" default:"updateOrCreate"`
	// ItemsBeforeDelay pauses the stream every N records. Zero disables.
	ItemsBeforeDelay int `mapstructure:"items_before_delay" default:"0"`
	// DelayAfterBatchMs is the batch-boundary pause in milliseconds.
	DelayAfterBatchMs int `mapstructure:"delay_after_batch_ms" default:"0"`
	// DelayBetweenItemsMs is the per-record pause in milliseconds.
	DelayBetweenItemsMs int `mapstructure:"delay_between_items_ms" default:"0"`
	// SchemaCacheSeconds bounds how long derived schemas are reused.
	SchemaCacheSeconds int `mapstructure:"schema_cache_seconds" default:"300"`
	// Entities lists the entities registered at startup, comma-separated
	// identity or identity:table pairs, e.g. "user,book:books".
	Entities string `mapstructure:"entities" default:""`
}

// BaseOptions expands the configured defaults into import options.
func (c Config) BaseOptions() Options {
	return Options{
		IdentityFields:           c.Fields(),
		Strict:                   c.Strict,
		UpdateMethod:             c.UpdateMethod,
		NumberOfItemsBeforeDelay: c.ItemsBeforeDelay,
		DelayAfterItemBatch:      time.Duration(c.DelayAfterBatchMs) * time.Millisecond,
		DelayBetweenItems:        time.Duration(c.DelayBetweenItemsMs) * time.Millisecond,
	}
}

// Fields splits the configured identity field list, dropping empty parts.
func (c Config) Fields() []string {
	var out []string
	for _, f := range strings.Split(c.IdentityFields, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// SchemaCacheTTL returns the schema cache lifetime.
func (c Config) SchemaCacheTTL() time.Duration {
	return time.Duration(c.SchemaCacheSeconds) * time.Second
}
