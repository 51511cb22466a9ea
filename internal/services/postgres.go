package services

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// gameStatsSchema holds per-day aggregate counters for finished games.
// No move sequences or per-game records are stored.
const gameStatsSchema = `
	CREATE TABLE IF NOT EXISTS game_stats (
		day DATE PRIMARY KEY,
		games INTEGER NOT NULL DEFAULT 0,
		black_wins INTEGER NOT NULL DEFAULT 0,
		white_wins INTEGER NOT NULL DEFAULT 0,
		ties INTEGER NOT NULL DEFAULT 0
	)
`

// InitPostgres initializes the database connection
func InitPostgres(url string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	// Test the connection
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	if _, err = db.Exec(gameStatsSchema); err != nil {
		return nil, fmt.Errorf("error creating game_stats table: %w", err)
	}

	return db, nil
}
