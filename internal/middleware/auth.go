package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"taskmanager/internal/service"
)

// RequireToken builds a handler that rejects requests without a valid
// bearer token. Claims of accepted tokens are stored in locals.
func RequireToken(tokens *service.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "No token provided"})
		}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token format"})
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
		}
		userID, err := claims.UserID()
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid user ID in token"})
		}

		c.Locals("userID", userID)
		c.Locals("username", claims.UserName)
		return c.Next()
	}
}
