package sync

import (
	"context"
	"fmt"
	gosync "sync"

	"github.com/goliatone/core.io-data-manager/core/model"
)

// Transform maps an incoming record batch before the pass iterates it.
// Applied to the whole sequence, not per record.
type Transform interface {
	TransformBatch(ctx context.Context, records []*model.Record) ([]*model.Record, error)
}

// TransformFunc adapts a function to the Transform interface.
type TransformFunc func(ctx context.Context, records []*model.Record) ([]*model.Record, error)

// TransformBatch calls the function.
func (f TransformFunc) TransformBatch(ctx context.Context, records []*model.Record) ([]*model.Record, error) {
	return f(ctx, records)
}

// PluginLoader resolves a string transform reference to a Transform. Used
// when Options.TransformPlugin is set; load failures are logged by the
// engine and the batch proceeds untransformed.
type PluginLoader interface {
	Load(path string) (Transform, error)
}

// PluginRegistry is the registry-backed PluginLoader: transforms are
// registered by name at startup and looked up by that name at import time.
type PluginRegistry struct {
	mu      gosync.RWMutex
	plugins map[string]Transform
}

// NewPluginRegistry returns an empty registry.
func NewPluginRegistry() *PluginRegistry {
	return &PluginRegistry{plugins: make(map[string]Transform)}
}

// Register makes a transform resolvable under the given name.
func (r *PluginRegistry) Register(name string, t Transform) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plugins[name] = t
}

// Load resolves a registered transform, failing with *PluginLoadError for
// unknown names.
func (r *PluginRegistry) Load(path string) (Transform, error) {
	r.mu.RLock()
	t, ok := r.plugins[path]
	r.mu.RUnlock()
	if !ok {
		return nil, &PluginLoadError{Path: path, Err: fmt.Errorf("no transform registered")}
	}
	return t, nil
}
