package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderXRequestID is the correlation-id header honored and echoed back.
const HeaderXRequestID = "X-Request-ID"

// LocalsRequestID is the fiber locals key holding the request id.
const LocalsRequestID = "request_id"

// RequestID attaches a correlation id to every request: the client's
// X-Request-ID when present, a fresh UUID otherwise. The id is stored in
// locals and echoed on the response.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Locals(LocalsRequestID, requestID)
		c.Set(HeaderXRequestID, requestID)

		return c.Next()
	}
}
