package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Software78/payment-instruction-parser/log"
)

// requestIDHeader carries the generated request id back to the caller.
const requestIDHeader = "X-Request-Id"

// WithLogging returns a middleware that emits one structured access-log
// entry per request, tagged with a generated request id.
func WithLogging(logger log.Logger) fiber.Handler {
	if logger == nil {
		logger = log.NewNop()
	}

	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(requestIDHeader, requestID)

		err := c.Next()

		status := c.Response().StatusCode()

		level := log.LevelInfo
		if status >= fiber.StatusInternalServerError || err != nil {
			level = log.LevelError
		}

		logger.Log(c.UserContext(), level, "http request",
			log.String("request_id", requestID),
			log.String("method", c.Method()),
			log.String("path", c.Path()),
			log.Int("status", status),
			log.Duration("duration", time.Since(start)),
		)

		return err
	}
}
