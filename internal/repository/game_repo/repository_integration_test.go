//go:build integration

package game_repo_test

import (
	"bowling_backend/internal/model"
	"bowling_backend/internal/repository"
	"bowling_backend/internal/repository/auth_repo"
	"bowling_backend/internal/repository/bowler_repo"
	"bowling_backend/internal/repository/game_repo"
	"bowling_backend/internal/repository/pgtest"
	"context"
	"errors"
	"testing"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositories(t *testing.T) {
	pool := pgtest.NewPool(t)
	ctx := context.Background()

	bowlers := bowler_repo.NewBowlerRepository(pool)
	games := game_repo.NewGameRepository(pool)
	sessions := auth_repo.NewAuthRepository(pool)

	id, err := bowlers.CreateBowler(ctx, &model.Bowler{Name: "Walter", Login: "walter", Password: "hash"})
	require.NoError(t, err)

	_, err = bowlers.CreateBowler(ctx, &model.Bowler{Name: "Other", Login: "walter", Password: "hash"})
	assert.ErrorIs(t, err, repository.ErrAlreadyExists)

	t.Run("games", func(t *testing.T) {
		first := &model.Game{
			ID:          "game-1",
			BowlerID:    id,
			Rolls:       "X,X,X,X,X,X,X,X,X,X,X,X",
			Frames:      [][]int{{10, 0}, {10, 0}, {10, 0}, {10, 0}, {10, 0}, {10, 0}, {10, 0}, {10, 0}, {10, 0}, {10, 10, 10}},
			FrameScores: []int{30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
			Score:       300,
			Strikes:     12,
			Complete:    true,
			CreatedAt:   time.Now().Add(-time.Minute).UTC(),
		}
		second := &model.Game{
			ID:          "game-2",
			BowlerID:    id,
			Rolls:       "5,5,3",
			Frames:      [][]int{{5, 5}, {3}},
			FrameScores: []int{13, 3},
			Score:       16,
			Spares:      1,
			CreatedAt:   time.Now().UTC(),
		}
		require.NoError(t, games.CreateGame(ctx, first))
		require.NoError(t, games.CreateGame(ctx, second))

		got, err := games.GetGame(ctx, id, "game-1")
		require.NoError(t, err)
		assert.Equal(t, first.Frames, got.Frames)
		assert.Equal(t, first.FrameScores, got.FrameScores)
		assert.Equal(t, 300, got.Score)
		assert.True(t, got.Complete)

		_, err = games.GetGame(ctx, id+1, "game-1")
		assert.ErrorIs(t, err, repository.ErrNotFound)

		list, err := games.ListGames(ctx, id, 10)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "game-2", list[0].ID)

		list, err = games.ListGames(ctx, id, 1)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("bowler totals in a transaction", func(t *testing.T) {
		trManager, err := manager.New(trmpgx.NewDefaultFactory(pool))
		require.NoError(t, err)

		require.NoError(t, trManager.Do(ctx, func(ctx context.Context) error {
			return bowlers.RecordGame(ctx, id, 180)
		}))

		rollback := errors.New("rollback")
		err = trManager.Do(ctx, func(ctx context.Context) error {
			if err := bowlers.RecordGame(ctx, id, 290); err != nil {
				return err
			}
			return rollback
		})
		assert.ErrorIs(t, err, rollback)

		b, err := bowlers.GetBowler(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 1, b.GamesPlayed)
		assert.Equal(t, 180, b.BestScore)

		assert.ErrorIs(t, bowlers.RecordGame(ctx, id+100, 100), repository.ErrNotFound)
	})

	t.Run("sessions", func(t *testing.T) {
		require.NoError(t, sessions.CreateSession(ctx, &model.Session{
			ID:           "live",
			BowlerID:     id,
			RefreshToken: "hash",
			ExpiresAt:    time.Now().Add(time.Hour),
		}))
		require.NoError(t, sessions.CreateSession(ctx, &model.Session{
			ID:           "stale",
			BowlerID:     id,
			RefreshToken: "hash",
			ExpiresAt:    time.Now().Add(-time.Hour),
		}))

		hash, err := sessions.GetRefreshTokenBySessionID(ctx, "live")
		require.NoError(t, err)
		assert.Equal(t, "hash", hash)

		_, err = sessions.GetRefreshTokenBySessionID(ctx, "stale")
		assert.ErrorIs(t, err, repository.ErrNotFound)

		owner, err := sessions.GetBowlerBySessionID(ctx, "live")
		require.NoError(t, err)
		assert.Equal(t, "walter", owner.Login)

		require.NoError(t, sessions.DeleteSession(ctx, "live"))
		_, err = sessions.GetBowlerBySessionID(ctx, "live")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
