package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/reversilab/reversi/internal/config"
)

// TokenAuth middleware that checks the x-token header.
func TokenAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cfg := c.Locals("config").(*config.ServerConfig) //nolint: errcheck

		token := c.Get("x-token")
		if token != "" && token == cfg.Token {
			return c.Next()
		}

		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}
}
