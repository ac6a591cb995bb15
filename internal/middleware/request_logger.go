package middleware

import (
	"time"

	"catalog/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const HeaderRequestID = "X-Request-ID"

// RequestLogger attaches a per-request logger to the request context and logs
// each completed request with its status and latency.
func RequestLogger(base zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(HeaderRequestID, requestID)

		log := base.With().
			Str(logger.KeyRequestID, requestID).
			Str(logger.KeyRequestMethod, c.Method()).
			Str(logger.KeyRequestPath, c.Path()).
			Str(logger.KeyRequestIP, c.IP()).
			Logger()
		c.SetUserContext(log.WithContext(c.UserContext()))

		err := c.Next()
		if err != nil {
			// Render now so the logged status matches what the client sees.
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		event := log.Info()
		if status >= fiber.StatusInternalServerError {
			event = log.Error()
		}
		event.Int(logger.KeyStatus, status).
			Dur(logger.KeyLatency, time.Since(start)).
			Msg("request completed")
		return nil
	}
}
