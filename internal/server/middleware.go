package server

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"worklog-billing/internal/logging"
)

// requestLogger logs one line per request with method, path, status and latency
func requestLogger(logger logging.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		// Errors are translated to a response after this middleware returns,
		// so derive the status from the error itself.
		status := c.Response().StatusCode()
		if err != nil {
			status = statusForError(err)
		}
		fields := []logging.Field{
			logging.String("method", c.Method()),
			logging.String("path", c.Path()),
			logging.Int("status", status),
			logging.Duration("latency", time.Since(start)),
		}

		if status >= 500 {
			logger.Error("request failed", fields...)
		} else {
			logger.Info("request handled", fields...)
		}

		return err
	}
}
