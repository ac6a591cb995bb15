package middleware

import (
	"errors"
	"strings"

	"catalog/internal/logger"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// AuthRequired is a Fiber middleware to check for a valid JWT token issued to
// a user that still exists.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization header is required")
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization header format must be 'Bearer <token>'")
		}

		user, err := authService.Authenticate(parts[1])
		if err != nil {
			if errors.Is(err, services.ErrInvalidToken) {
				return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
			}
			return err
		}

		c.Locals("user_id", user.ID.String())
		c.Locals("username", user.Username)

		// Tag the rest of the request's log lines with the operator.
		log := zerolog.Ctx(c.UserContext()).With().Str(logger.KeyUsername, user.Username).Logger()
		c.SetUserContext(log.WithContext(c.UserContext()))

		return c.Next()
	}
}
