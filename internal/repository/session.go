package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/reversilab/reversi/internal/othello"
	"github.com/reversilab/reversi/internal/services"
)

const (
	sessionKeyPrefix = "game:"
	sessionTTL       = 24 * time.Hour
)

// ErrSessionNotFound is returned when a game id is unknown or expired.
var ErrSessionNotFound = errors.New("game session not found")

// sessionLocks holds one mutex per active game id so that concurrent
// updates of the same session cannot overwrite each other.
var sessionLocks sync.Map

func lockSession(id string) func() {
	mu, _ := sessionLocks.LoadOrStore(id, &sync.Mutex{})
	mutex := mu.(*sync.Mutex) //nolint: errcheck
	mutex.Lock()

	return mutex.Unlock
}

// storedSession is the Redis representation of a session. Only the current
// board and turn are kept; the move history is never stored.
type storedSession struct {
	Board string `json:"board"`
	Turn  string `json:"turn"`
}

// SessionRepository stores active game sessions in Redis.
type SessionRepository struct {
	services *services.Services
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(c *fiber.Ctx) *SessionRepository {
	return &SessionRepository{
		services: c.Locals("services").(*services.Services), //nolint: errcheck
	}
}

func NewSessionRepositoryFromServices(services *services.Services) *SessionRepository {
	return &SessionRepository{
		services: services,
	}
}

// Create stores a fresh game and returns its id.
func (repo *SessionRepository) Create(ctx context.Context) (string, *othello.Game, error) {
	id := uuid.New().String()
	game := othello.NewGame()

	if err := repo.Save(ctx, id, game); err != nil {
		return "", nil, err
	}

	return id, game, nil
}

// Get loads the session with the given id.
func (repo *SessionRepository) Get(ctx context.Context, id string) (*othello.Game, error) {
	redisConn := repo.services.Redis

	jsonData, err := redisConn.Get(ctx, sessionKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error loading session: %w", err)
	}

	var stored storedSession
	if err = json.Unmarshal([]byte(jsonData), &stored); err != nil {
		return nil, fmt.Errorf("error unmarshaling session: %w", err)
	}

	board, err := othello.NewBoardFromString(stored.Board)
	if err != nil {
		return nil, fmt.Errorf("error parsing stored board: %w", err)
	}

	turn, err := othello.ParseColor(stored.Turn)
	if err != nil {
		return nil, fmt.Errorf("error parsing stored turn: %w", err)
	}

	// Passes and game over are settled again on load, which is
	// deterministic, so a finished session reconstructs as finished.
	return othello.NewGameWithBoard(board, turn), nil
}

// Update loads the session with the given id, applies fn to it and saves
// the result. Updates of the same session are serialized, so two moves
// arriving at the same time never load the same board.
func (repo *SessionRepository) Update(ctx context.Context, id string, fn func(game *othello.Game) error) (*othello.Game, error) {
	unlock := lockSession(id)
	defer unlock()

	game, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = fn(game); err != nil {
		return nil, err
	}

	if err = repo.Save(ctx, id, game); err != nil {
		return nil, err
	}

	return game, nil
}

// Save stores the session and refreshes its TTL.
func (repo *SessionRepository) Save(ctx context.Context, id string, game *othello.Game) error {
	stored := storedSession{
		Board: game.Board().String(),
		Turn:  game.Turn().String(),
	}

	jsonData, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("error marshaling session: %w", err)
	}

	redisConn := repo.services.Redis

	if err = redisConn.Set(ctx, sessionKeyPrefix+id, jsonData, sessionTTL).Err(); err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}

	return nil
}
