package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestID tags each request with an X-Request-ID header, generating one
// when the client did not send its own.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals("requestID", id)
		c.Set(fiber.HeaderXRequestID, id)

		return c.Next()
	}
}
