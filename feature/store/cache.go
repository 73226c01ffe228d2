package store

import (
	"sync"
	"time"

	"github.com/goliatone/core.io-data-manager/core/model"

	"golang.org/x/sync/singleflight"
)

// schemaEntry is one cached derived schema.
type schemaEntry struct {
	schema *model.Schema
	built  time.Time
}

func (e *schemaEntry) expired(ttl time.Duration) bool {
	if ttl <= 0 {
		return true
	}
	return time.Since(e.built) > ttl
}

// schemaCache caches derived schemas per identity. Concurrent builds for
// the same identity collapse into one introspection via singleflight.
type schemaCache struct {
	mu      sync.RWMutex
	entries map[string]*schemaEntry
	sf      singleflight.Group
	ttl     time.Duration
}

func newSchemaCache(ttl time.Duration) *schemaCache {
	return &schemaCache{
		entries: make(map[string]*schemaEntry),
		ttl:     ttl,
	}
}

func (c *schemaCache) get(key string, build func() (*model.Schema, error)) (*model.Schema, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && !entry.expired(c.ttl) {
		return entry.schema, nil
	}

	v, err, _ := c.sf.Do(key, func() (any, error) {
		// Re-check under singleflight: another caller may have rebuilt
		// while this one waited.
		c.mu.RLock()
		entry, ok := c.entries[key]
		c.mu.RUnlock()
		if ok && !entry.expired(c.ttl) {
			return entry.schema, nil
		}

		schema, err := build()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = &schemaEntry{schema: schema, built: time.Now()}
		c.mu.Unlock()
		return schema, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.Schema), nil
}

func (c *schemaCache) invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}
