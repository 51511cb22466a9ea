package repository

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/reversilab/reversi/internal/othello"
	"github.com/reversilab/reversi/internal/services"
)

// Stats are aggregate counters over finished games.
type Stats struct {
	Games     int `db:"games" json:"games"`
	BlackWins int `db:"black_wins" json:"black_wins"`
	WhiteWins int `db:"white_wins" json:"white_wins"`
	Ties      int `db:"ties" json:"ties"`
}

// StatsRepository handles database operations for game stats.
type StatsRepository struct {
	services *services.Services
}

// NewStatsRepository creates a new StatsRepository.
func NewStatsRepository(c *fiber.Ctx) *StatsRepository {
	return &StatsRepository{
		services: c.Locals("services").(*services.Services), //nolint: errcheck
	}
}

func NewStatsRepositoryFromServices(services *services.Services) *StatsRepository {
	return &StatsRepository{
		services: services,
	}
}

// RecordResult bumps today's counters for a finished game.
func (repo *StatsRepository) RecordResult(ctx context.Context, result othello.Result) error {
	pgConn := repo.services.Postgres

	blackWin, whiteWin, tie := 0, 0, 0
	switch result.Winner {
	case othello.Black:
		blackWin = 1
	case othello.White:
		whiteWin = 1
	default:
		tie = 1
	}

	query := `
		INSERT INTO game_stats (day, games, black_wins, white_wins, ties)
		VALUES (CURRENT_DATE, 1, $1, $2, $3)
		ON CONFLICT (day)
		DO UPDATE SET
			games = game_stats.games + 1,
			black_wins = game_stats.black_wins + EXCLUDED.black_wins,
			white_wins = game_stats.white_wins + EXCLUDED.white_wins,
			ties = game_stats.ties + EXCLUDED.ties
	`

	if _, err := pgConn.ExecContext(ctx, query, blackWin, whiteWin, tie); err != nil {
		return fmt.Errorf("error recording result: %w", err)
	}

	return nil
}

// Totals returns the counters summed over all days.
func (repo *StatsRepository) Totals(ctx context.Context) (Stats, error) {
	pgConn := repo.services.Postgres

	query := `
		SELECT
			COALESCE(SUM(games), 0) AS games,
			COALESCE(SUM(black_wins), 0) AS black_wins,
			COALESCE(SUM(white_wins), 0) AS white_wins,
			COALESCE(SUM(ties), 0) AS ties
		FROM game_stats
	`

	var stats Stats
	if err := pgConn.GetContext(ctx, &stats, query); err != nil {
		return Stats{}, fmt.Errorf("error loading stats: %w", err)
	}

	return stats, nil
}
