package repository //nolint:testpackage

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/reversilab/reversi/internal/othello"
	"github.com/reversilab/reversi/internal/services"
)

const (
	redisPort       = "6379/tcp"
	redisImage      = "redis"
	redisTag        = "alpine"
	containerExpiry = 120 // seconds
	maxWaitDuration = 120 * time.Second
)

// newTestServices spins up a disposable Redis container. Tests are skipped
// when Docker is not available.
func newTestServices(t *testing.T) *services.Services {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("could not connect to docker: %v", err)
	}
	if err = pool.Client.Ping(); err != nil {
		t.Skipf("docker is not running: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: redisImage,
		Tag:        redisTag,
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)

	// Tell docker to hard kill the container after the expiry
	_ = resource.Expire(containerExpiry)

	pool.MaxWait = maxWaitDuration

	var client *redis.Client
	err = pool.Retry(func() error {
		client = redis.NewClient(&redis.Options{Addr: resource.GetHostPort(redisPort)})
		return client.Ping(context.Background()).Err()
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = pool.Purge(resource)
	})

	return &services.Services{Redis: client}
}

func TestSessionRepository(t *testing.T) {
	repo := NewSessionRepositoryFromServices(newTestServices(t))
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		id, game, err := repo.Create(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, id)
		require.True(t, game.Board().Equal(othello.NewBoardStart()))

		loaded, err := repo.Get(ctx, id)
		require.NoError(t, err)
		require.True(t, loaded.Board().Equal(game.Board()))
		require.Equal(t, othello.Black, loaded.Turn())
		require.Equal(t, othello.StatusOngoing, loaded.Status())
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.Get(ctx, "e03ab337-no-such-game")
		require.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("save round trip after move", func(t *testing.T) {
		id, game, err := repo.Create(ctx)
		require.NoError(t, err)

		coord, err := othello.ParseField("d3")
		require.NoError(t, err)

		_, err = game.ProposeMove(coord)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, id, game))

		loaded, err := repo.Get(ctx, id)
		require.NoError(t, err)
		require.True(t, loaded.Board().Equal(game.Board()))
		require.Equal(t, othello.White, loaded.Turn())
	})

	t.Run("update applies and saves", func(t *testing.T) {
		id, _, err := repo.Create(ctx)
		require.NoError(t, err)

		coord, err := othello.ParseField("d3")
		require.NoError(t, err)

		game, err := repo.Update(ctx, id, func(game *othello.Game) error {
			_, moveErr := game.ProposeMove(coord)
			return moveErr
		})
		require.NoError(t, err)
		require.Equal(t, othello.White, game.Turn())

		loaded, err := repo.Get(ctx, id)
		require.NoError(t, err)
		require.True(t, loaded.Board().Equal(game.Board()))
	})

	t.Run("update error does not save", func(t *testing.T) {
		id, created, err := repo.Create(ctx)
		require.NoError(t, err)

		_, err = repo.Update(ctx, id, func(game *othello.Game) error {
			_, moveErr := game.ProposeMove(othello.Coordinate{Row: 0, Col: 0})
			return moveErr
		})
		require.ErrorIs(t, err, othello.ErrIllegalMove)

		loaded, err := repo.Get(ctx, id)
		require.NoError(t, err)
		require.True(t, loaded.Board().Equal(created.Board()))
	})

	t.Run("concurrent updates are serialized", func(t *testing.T) {
		id, _, err := repo.Create(ctx)
		require.NoError(t, err)

		// Every update plays the first legal move of whoever is to
		// move. If two updates loaded the same board, one move would
		// be lost and the final disc count would come up short.
		const moveCount = 8

		var wg sync.WaitGroup
		errs := make(chan error, moveCount)
		for i := 0; i < moveCount; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				_, err := repo.Update(ctx, id, func(game *othello.Game) error {
					moves := game.LegalMoves()
					if len(moves) == 0 {
						return othello.ErrGameFinished
					}

					_, moveErr := game.ProposeMove(moves[0])
					return moveErr
				})
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			require.NoError(t, err)
		}

		loaded, err := repo.Get(ctx, id)
		require.NoError(t, err)

		require.Equal(t, 4+moveCount, loaded.Counts().Occupied())
	})

	t.Run("finished game reconstructs as finished", func(t *testing.T) {
		id, game, err := repo.Create(ctx)
		require.NoError(t, err)

		for _, field := range []string{"e6", "f4", "e3", "f6", "g5", "d6", "e7", "f5", "c5"} {
			coord, err := othello.ParseField(field)
			require.NoError(t, err)

			_, err = game.ProposeMove(coord)
			require.NoError(t, err)
		}
		require.Equal(t, othello.StatusFinished, game.Status())
		require.NoError(t, repo.Save(ctx, id, game))

		loaded, err := repo.Get(ctx, id)
		require.NoError(t, err)
		require.Equal(t, othello.StatusFinished, loaded.Status())

		result := loaded.Result()
		require.NotNil(t, result)
		require.Equal(t, othello.Black, result.Winner)
		require.Equal(t, othello.Counts{Black: 13, White: 0, Empty: 51}, result.Counts)
	})
}
