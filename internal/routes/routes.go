package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/reversilab/reversi/internal/routes/api"
	"github.com/reversilab/reversi/internal/routes/version"
	"github.com/reversilab/reversi/internal/routes/ws"
)

func rootHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name": "reversi server",
	})
}

func SetupRoutes(app *fiber.App) {
	// Serve API routes
	api.SetupRoutes(app)

	// Serve websocket play
	ws.SetupRoutes(app)

	// Serve version info
	version.SetupRoutes(app)

	// Serve root page
	app.Get("/", rootHandler)
}
