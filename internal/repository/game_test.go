package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-sessions/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-sessions/internal/entity"
	"github.com/rocketscienceinc/tictactoe-sessions/testing/suite"
)

func newGameRepos(t *testing.T) (context.Context, GameRepository) {
	t.Helper()

	ctx, st := suite.NewSQLite(t)
	sessions := NewSessionRepository(st.Storage.Connection)

	session := entity.NewSession("s1", "friday", entity.NewPlayer("p1", "Alice", "X"))
	session.Opponent = entity.HumanSeat(entity.NewPlayer("p2", "Bob", "O"))
	require.NoError(t, sessions.Create(ctx, session))

	return ctx, NewGameRepository(st.Storage.Connection)
}

func TestGameRepository_Start(t *testing.T) {
	t.Run("Stores a new active game", func(t *testing.T) {
		ctx, repo := newGameRepos(t)

		// Given: a fresh game for the session
		game := entity.NewGame("g1", "s1", "p1")

		// When: the game is started
		err := repo.Start(ctx, game)

		// Then: it becomes the active game with an empty board
		require.NoError(t, err)

		active, err := repo.GetActive(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "g1", active.ID)
		assert.Equal(t, "p1", active.ActivePlayerID)
		assert.Equal(t, entity.Board{}, active.Board)
		assert.True(t, active.IsActive)
		assert.False(t, active.IsEnded)
		assert.Empty(t, active.WinnerID)
	})

	t.Run("Deactivates the previous game", func(t *testing.T) {
		ctx, repo := newGameRepos(t)
		require.NoError(t, repo.Start(ctx, entity.NewGame("g1", "s1", "p1")))

		// When: a second game is started in the same session
		err := repo.Start(ctx, entity.NewGame("g2", "s1", "p1"))

		// Then: only the new game is active, the old one is closed
		require.NoError(t, err)

		active, err := repo.GetActive(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "g2", active.ID)

		old, err := repo.GetByID(ctx, "g1")
		require.NoError(t, err)
		assert.False(t, old.IsActive)
		assert.True(t, old.IsEnded)
		assert.Equal(t, 1, old.Version)

		games, err := repo.ListBySession(ctx, "s1")
		require.NoError(t, err)
		require.Len(t, games, 2)

		activeCount := 0
		for _, game := range games {
			if game.IsActive {
				activeCount++
			}
		}
		assert.Equal(t, 1, activeCount)
	})

	t.Run("Duplicate id is a conflict", func(t *testing.T) {
		ctx, repo := newGameRepos(t)
		require.NoError(t, repo.Start(ctx, entity.NewGame("g1", "s1", "p1")))

		err := repo.Start(ctx, entity.NewGame("g1", "s1", "p1"))

		require.ErrorIs(t, err, apperror.ErrGameConflict)

		active, err := repo.GetActive(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "g1", active.ID)
	})
}

func TestGameRepository_GetActive_NotFound(t *testing.T) {
	ctx, repo := newGameRepos(t)

	// When: the session has no game yet
	game, err := repo.GetActive(ctx, "s1")

	// Then: not found is returned
	require.ErrorIs(t, err, ErrGameNotFound)
	require.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Nil(t, game)
}

func TestGameRepository_Update(t *testing.T) {
	t.Run("Writes the whole game", func(t *testing.T) {
		ctx, repo := newGameRepos(t)
		require.NoError(t, repo.Start(ctx, entity.NewGame("g1", "s1", "p1")))

		// Given: a game read back and changed by a move
		game, err := repo.GetActive(ctx, "s1")
		require.NoError(t, err)
		require.NoError(t, game.Board.AddSymbol(1, 1, "X"))
		game.NumSymbols = 1
		game.ActivePlayerID = "p2"
		game.UpdatedAt = time.Now().UTC()

		// When: it is updated
		err = repo.Update(ctx, game)

		// Then: the stored game matches and the version advanced
		require.NoError(t, err)
		assert.Equal(t, 1, game.Version)

		stored, err := repo.GetByID(ctx, "g1")
		require.NoError(t, err)
		assert.Equal(t, entity.Symbol("X"), stored.Board.At(1, 1))
		assert.Equal(t, 1, stored.NumSymbols)
		assert.Equal(t, "p2", stored.ActivePlayerID)
		assert.Equal(t, 1, stored.Version)
	})

	t.Run("Stores the winner", func(t *testing.T) {
		ctx, repo := newGameRepos(t)
		require.NoError(t, repo.Start(ctx, entity.NewGame("g1", "s1", "p1")))

		game, err := repo.GetActive(ctx, "s1")
		require.NoError(t, err)
		game.WinnerID = "p1"
		game.IsEnded = true

		require.NoError(t, repo.Update(ctx, game))

		stored, err := repo.GetByID(ctx, "g1")
		require.NoError(t, err)
		assert.Equal(t, "p1", stored.WinnerID)
		assert.True(t, stored.IsEnded)
	})

	t.Run("Stale version is a conflict", func(t *testing.T) {
		ctx, repo := newGameRepos(t)
		require.NoError(t, repo.Start(ctx, entity.NewGame("g1", "s1", "p1")))

		// Given: two readers of the same game
		first, err := repo.GetActive(ctx, "s1")
		require.NoError(t, err)
		second, err := repo.GetActive(ctx, "s1")
		require.NoError(t, err)

		require.NoError(t, first.Board.AddSymbol(0, 0, "X"))
		require.NoError(t, repo.Update(ctx, first))

		// When: the second reader writes its own move
		require.NoError(t, second.Board.AddSymbol(2, 2, "X"))
		err = repo.Update(ctx, second)

		// Then: it loses and nothing of its move is stored
		require.ErrorIs(t, err, apperror.ErrGameConflict)
		assert.Equal(t, 0, second.Version)

		stored, err := repo.GetByID(ctx, "g1")
		require.NoError(t, err)
		assert.Equal(t, entity.Symbol("X"), stored.Board.At(0, 0))
		assert.True(t, stored.Board.At(2, 2).IsEmpty())
	})

	t.Run("Deactivated game can't be written by a stale reader", func(t *testing.T) {
		ctx, repo := newGameRepos(t)
		require.NoError(t, repo.Start(ctx, entity.NewGame("g1", "s1", "p1")))

		stale, err := repo.GetActive(ctx, "s1")
		require.NoError(t, err)

		require.NoError(t, repo.Start(ctx, entity.NewGame("g2", "s1", "p1")))

		err = repo.Update(ctx, stale)

		require.ErrorIs(t, err, apperror.ErrGameConflict)
	})
}

func TestGameRepository_CountWins(t *testing.T) {
	ctx, repo := newGameRepos(t)

	// Given: two games won by p1 and one drawn
	for _, id := range []string{"g1", "g2", "g3"} {
		require.NoError(t, repo.Start(ctx, entity.NewGame(id, "s1", "p1")))

		game, err := repo.GetActive(ctx, "s1")
		require.NoError(t, err)

		game.IsEnded = true
		if id != "g3" {
			game.WinnerID = "p1"
		}
		require.NoError(t, repo.Update(ctx, game))
	}

	// When: wins are counted
	ownerWins, err := repo.CountWins(ctx, "p1")
	require.NoError(t, err)
	opponentWins, err := repo.CountWins(ctx, "p2")
	require.NoError(t, err)

	// Then: only decided games count
	assert.Equal(t, 2, ownerWins)
	assert.Equal(t, 0, opponentWins)
}
