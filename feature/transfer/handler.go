package transfer

import (
	"errors"
	"time"

	"github.com/goliatone/core.io-data-manager/core/codec"
	"github.com/goliatone/core.io-data-manager/core/export"
	"github.com/goliatone/core.io-data-manager/core/logger"
	"github.com/goliatone/core.io-data-manager/core/model"
	"github.com/goliatone/core.io-data-manager/core/sync"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for imports and exports. Import requests
// start from the configured default options; query params overlay them.
type Handler struct {
	service  *Service
	defaults sync.Options
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, defaults sync.Options) *Handler {
	return &Handler{service: service, defaults: defaults}
}

// RegisterRoutes registers the transfer routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/transfer")
	group.Post("/:identity/import", h.HandleImport)
	group.Get("/:identity/export", h.HandleExport)
}

// HandleImport imports the raw request body into the identity's
// collection. Format comes from the "format" query param; identityFields,
// throttle, truncate, strict and updateMethod knobs overlay the configured
// defaults, which apply for any param left unset.
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	identity := c.Params("identity")
	format := c.Query("format", "json")
	l := logger.WithRayID(h.service.logger, c)

	opts := h.defaults
	if v := c.Query("identityFields"); v != "" {
		opts.IdentityFields = sync.Config{IdentityFields: v}.Fields()
	}
	if c.Query("truncate") != "" {
		opts.Truncate = c.QueryBool("truncate")
	}
	if c.Query("strict") != "" {
		opts.Strict = c.QueryBool("strict")
	}
	if v := c.Query("updateMethod"); v != "" {
		opts.UpdateMethod = v
	}
	if v := c.Query("transform"); v != "" {
		opts.TransformPlugin = v
	}
	if v := c.QueryInt("numberOfItemsBeforeDelay", -1); v >= 0 {
		opts.NumberOfItemsBeforeDelay = v
	}
	if v := c.QueryInt("delayAfterItemBatch", -1); v >= 0 {
		opts.DelayAfterItemBatch = time.Duration(v) * time.Millisecond
	}
	if v := c.QueryInt("delayBetweenItems", -1); v >= 0 {
		opts.DelayBetweenItems = time.Duration(v) * time.Millisecond
	}

	summary, err := h.service.ImportData(c.Context(), identity, format, c.Body(), opts)
	if err != nil {
		status := statusFor(err)
		if status == fiber.StatusInternalServerError {
			l.Error("import failed", zap.String("identity", identity), zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(summary)
}

// HandleExport serializes the identity's collection in the requested
// format. Supports limit, skip and sort query params.
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	identity := c.Params("identity")
	format := c.Query("format", "json")
	l := logger.WithRayID(h.service.logger, c)

	q := export.Query{
		Skip:  c.QueryInt("skip"),
		Limit: c.QueryInt("limit"),
		Sort:  c.Query("sort"),
	}

	data, err := h.service.ExportData(c.Context(), identity, q, format, nil)
	if err != nil {
		status := statusFor(err)
		if status == fiber.StatusInternalServerError {
			l.Error("export failed", zap.String("identity", identity), zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, contentTypeFor(format))
	return c.Send(data)
}

// statusFor maps the error taxonomy onto HTTP statuses: unknown identities
// and formats are client errors, configuration and sort errors are bad
// requests, everything else is a 500.
func statusFor(err error) int {
	var notFound *model.NotFoundError
	var unsupported *codec.UnsupportedFormatError
	var config *sync.ConfigurationError
	var sort *model.InvalidSortError
	switch {
	case errors.As(err, &notFound):
		return fiber.StatusNotFound
	case errors.As(err, &unsupported), errors.As(err, &config), errors.As(err, &sort):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func contentTypeFor(format string) string {
	switch format {
	case "csv":
		return "text/csv"
	case "tsv":
		return "text/tab-separated-values"
	default:
		return fiber.MIMEApplicationJSON
	}
}
