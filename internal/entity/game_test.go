package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-sessions/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// When: a new game is created
	game := NewGame("g1", "s1", "p1")

	// Then: it is active, empty and waits for the given player
	assert.Equal(t, "g1", game.ID)
	assert.Equal(t, "s1", game.SessionID)
	assert.Equal(t, "p1", game.ActivePlayerID)
	assert.Equal(t, Board{}, game.Board)
	assert.True(t, game.IsActive)
	assert.False(t, game.IsEnded)
	assert.Zero(t, game.NumSymbols)
	assert.False(t, game.CreatedAt.IsZero())
	require.NoError(t, game.ConfirmModifiable())
}

func TestGame_ConfirmModifiable(t *testing.T) {
	t.Run("Returns ErrGameNotModifiable when the game is ended", func(t *testing.T) {
		game := &Game{IsActive: true, IsEnded: true}

		err := game.ConfirmModifiable()

		require.ErrorIs(t, err, apperror.ErrGameNotModifiable)
		assert.ErrorIs(t, err, apperror.ErrGameConflict)
	})

	t.Run("Returns ErrGameNotModifiable when the game is inactive", func(t *testing.T) {
		game := &Game{IsActive: false}

		err := game.ConfirmModifiable()

		require.ErrorIs(t, err, apperror.ErrGameNotModifiable)
	})
}

func TestGame_CheckEnd(t *testing.T) {
	player := NewPlayer("p1", "John Doe", symbolX)

	t.Run("Records the winner when a series is complete", func(t *testing.T) {
		// Given: a board where X completed the first row
		game := NewGame("g1", "s1", player.ID)
		game.Board = Board{
			{symbolX, symbolX, symbolX},
			{symbolO, symbolO, Empty},
			{Empty, Empty, Empty},
		}
		game.NumSymbols = 4

		// When: the end of game is checked for X
		game.CheckEnd(player, symbolX)

		// Then: X's player won and the game is over
		assert.Equal(t, player.ID, game.WinnerID)
		assert.True(t, game.IsEnded)
		assert.False(t, game.IsDraw())
		assert.Equal(t, 5, game.NumSymbols)
	})

	t.Run("Ends in a draw on a full board", func(t *testing.T) {
		// Given: a full board with no complete series
		game := NewGame("g1", "s1", player.ID)
		game.Board = Board{
			{symbolX, symbolO, symbolX},
			{symbolX, symbolO, symbolO},
			{symbolO, symbolX, symbolX},
		}
		game.NumSymbols = 8

		// When: the end of game is checked
		game.CheckEnd(player, symbolX)

		// Then: the game ended without a winner
		assert.True(t, game.IsEnded)
		assert.True(t, game.IsDraw())
		assert.Empty(t, game.WinnerID)
		assert.Equal(t, 9, game.NumSymbols)
	})

	t.Run("Keeps going otherwise", func(t *testing.T) {
		game := NewGame("g1", "s1", player.ID)
		require.NoError(t, game.Board.AddSymbol(1, 1, symbolX))

		game.CheckEnd(player, symbolX)

		assert.False(t, game.IsEnded)
		assert.Empty(t, game.WinnerID)
		assert.Equal(t, 1, game.NumSymbols)
	})
}

func TestGame_IsDraw(t *testing.T) {
	t.Run("Game closed by a restart is not a draw", func(t *testing.T) {
		// Given: an unfinished game that was replaced by a new one
		game := NewGame("g1", "s1", "p1")
		require.NoError(t, game.Board.AddSymbol(0, 0, symbolX))
		game.IsActive = false
		game.IsEnded = true

		// Then: it has no winner but is not a draw either
		assert.False(t, game.HasWinner())
		assert.False(t, game.IsDraw())
		assert.ErrorIs(t, game.ConfirmModifiable(), apperror.ErrGameNotModifiable)
	})
}
