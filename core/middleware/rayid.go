package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RayIDHeader carries the request identifier back to the client.
const RayIDHeader = "X-Ray-ID"

// RayID assigns every request a unique identifier, stored in the request
// locals under "ray_id" and echoed in the response headers. The logger's
// WithRayID helper picks it up for log correlation.
func RayID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(RayIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(RayIDHeader, rid)
		return c.Next()
	}
}
