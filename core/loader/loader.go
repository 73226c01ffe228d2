package loader

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature is one loadable application module.
type Feature interface {
	// Name identifies the feature in logs and errors.
	Name() string

	// IsEnabled reports whether the feature should be loaded.
	IsEnabled() bool

	// Load mounts the feature's routes.
	Load(app fiber.Router) error
}

// Manager holds the registry of available features.
type Manager struct {
	features []Feature
}

// NewManager returns an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// Register adds a feature to the registry. Registration order is load
// order.
func (m *Manager) Register(f Feature) {
	m.features = append(m.features, f)
}

// LoadAll loads every enabled feature, failing on the first load error.
func (m *Manager) LoadAll(app fiber.Router, logger *zap.Logger) error {
	for _, f := range m.features {
		if !f.IsEnabled() {
			logger.Debug("feature disabled", zap.String("feature", f.Name()))
			continue
		}
		if err := f.Load(app); err != nil {
			return fmt.Errorf("failed to load feature %s: %w", f.Name(), err)
		}
		logger.Info("feature loaded", zap.String("feature", f.Name()))
	}
	return nil
}
