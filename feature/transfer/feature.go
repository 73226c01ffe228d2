package transfer

import (
	"github.com/goliatone/core.io-data-manager/core/sync"

	"github.com/gofiber/fiber/v2"
)

// Feature adapts the transfer service to the loader's feature contract.
type Feature struct {
	service  *Service
	defaults sync.Options
	enabled  bool
}

// NewFeature wraps a service for registration with the feature loader.
// The defaults are the configured import options the HTTP handlers fall
// back to.
func NewFeature(service *Service, defaults sync.Options, enabled bool) *Feature {
	return &Feature{service: service, defaults: defaults, enabled: enabled}
}

// Name identifies the feature.
func (f *Feature) Name() string {
	return "transfer"
}

// IsEnabled reports whether the feature should be mounted.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load mounts the transfer routes.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service, f.defaults).RegisterRoutes(app)
	return nil
}
