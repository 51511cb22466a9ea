package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/reversilab/reversi/internal/middleware"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api")

	apiGroup.Post("/games", CreateGame)
	apiGroup.Get("/games/:id", GetGame)
	apiGroup.Post("/games/:id/move", PostMove)

	apiGroup.Get("/stats", middleware.TokenAuth(), GetStats)
}
