package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/reversilab/reversi/internal/models"
	"github.com/reversilab/reversi/internal/othello"
	"github.com/reversilab/reversi/internal/repository"
)

// CreateGame starts a new game session.
func CreateGame(c *fiber.Ctx) error {
	repo := repository.NewSessionRepository(c)

	id, game, err := repo.Create(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.NewGameState(id, game))
}

// GetGame returns a snapshot of a game session.
func GetGame(c *fiber.Ctx) error {
	repo := repository.NewSessionRepository(c)

	id := c.Params("id")
	game, err := repo.Get(c.Context(), id)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.NewGameState(id, game))
}

// PostMove applies a move for the color to move in a game session.
func PostMove(c *fiber.Ctx) error {
	var payload models.MoveRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	coord, err := othello.ParseField(payload.Field)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	repo := repository.NewSessionRepository(c)

	id := c.Params("id")

	// Update serializes concurrent moves on the same session, so the
	// load-apply-save below never races with another request.
	var outcome *othello.Outcome
	game, err := repo.Update(c.Context(), id, func(game *othello.Game) error {
		var moveErr error
		outcome, moveErr = game.ProposeMove(coord)
		return moveErr
	})
	if errors.Is(err, repository.ErrSessionNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err != nil {
		return c.Status(moveErrorStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if game.Status() == othello.StatusFinished {
		recordResult(c, id, game)
	}

	return c.Status(fiber.StatusOK).JSON(models.NewGameState(id, game).WithOutcome(outcome))
}

// moveErrorStatus maps the game conditions to HTTP statuses. Out-of-range and
// illegal moves stay distinct.
func moveErrorStatus(err error) int {
	switch {
	case errors.Is(err, othello.ErrCoordinateOutOfRange):
		return fiber.StatusBadRequest
	case errors.Is(err, othello.ErrIllegalMove), errors.Is(err, othello.ErrGameFinished):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// recordResult bumps the aggregate stats for a finished game. Failures are
// logged but don't fail the move.
func recordResult(c *fiber.Ctx, id string, game *othello.Game) {
	result := game.Result()
	if result == nil {
		return
	}

	statsRepo := repository.NewStatsRepository(c)
	if err := statsRepo.RecordResult(c.Context(), *result); err != nil {
		slog.Error("Failed to record game result", "game", id, "error", err)
	}
}
