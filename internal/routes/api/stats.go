package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/reversilab/reversi/internal/repository"
)

// GetStats returns aggregate counters over finished games.
func GetStats(c *fiber.Ctx) error {
	repo := repository.NewStatsRepository(c)

	stats, err := repo.Totals(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}
