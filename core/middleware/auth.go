package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// AuthHeader carries the API key.
const AuthHeader = "X-Api-Key"

// APIKey validates the request's API key. An empty configured key disables
// authentication entirely.
func APIKey(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if key == "" {
			return c.Next()
		}
		provided := c.Get(AuthHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid api key",
			})
		}
		return c.Next()
	}
}
