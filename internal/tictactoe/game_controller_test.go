package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-sessions/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-sessions/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHumanSession() *entity.Session {
	session := entity.NewSession("s1", "My Board", entity.NewPlayer("p1", "John Doe", x))
	session.Opponent = entity.HumanSeat(entity.NewPlayer("p2", "Jane Doe", o))

	return session
}

func newComputerSession() *entity.Session {
	session := entity.NewSession("s1", "My Board", entity.NewPlayer("p1", "John Doe", x))
	session.Opponent = entity.ComputerSeat(entity.NewComputerPlayer("c1", "Computer", o))

	return session
}

func newController(priority Priority) *GameController {
	return NewGameController(x, o, NewStrategy(priority, FirstFreePicker()))
}

func play(t *testing.T, controller *GameController, session *entity.Session, game *entity.Game, moves ...entity.Coords) {
	t.Helper()

	for _, move := range moves {
		require.NoError(t, controller.AddSymbol(session, game, move))
	}
}

func TestGameController_AddSymbol_HumanOpponent(t *testing.T) {
	t.Run("Places the owner's symbol and passes the turn", func(t *testing.T) {
		// Given: a new game in a ready human session
		session := newHumanSession()
		game := entity.NewGame("g1", session.ID, session.Owner.ID)
		controller := newController(PriorityWinFirst)

		// When: the owner plays (0, 1)
		err := controller.AddSymbol(session, game, entity.Coords{Row: 0, Col: 1})

		// Then: X is placed and the opponent is active
		require.NoError(t, err)
		assert.Equal(t, x, game.Board.At(0, 1))
		assert.Equal(t, "p2", game.ActivePlayerID)
		assert.Equal(t, 1, game.NumSymbols)
		assert.False(t, game.IsEnded)
	})

	t.Run("Column win by the owner", func(t *testing.T) {
		session := newHumanSession()
		game := entity.NewGame("g1", session.ID, session.Owner.ID)
		controller := newController(PriorityWinFirst)

		play(t, controller, session, game,
			entity.Coords{Row: 0, Col: 1},
			entity.Coords{Row: 0, Col: 2},
			entity.Coords{Row: 1, Col: 1},
			entity.Coords{Row: 1, Col: 2},
			entity.Coords{Row: 2, Col: 1},
		)

		assert.Equal(t, entity.Board{{n, x, o}, {n, x, o}, {n, x, n}}, game.Board)
		assert.Equal(t, "p1", game.WinnerID)
		assert.True(t, game.IsEnded)
		assert.Equal(t, 5, game.NumSymbols)
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		session := newHumanSession()
		game := entity.NewGame("g1", session.ID, session.Owner.ID)
		controller := newController(PriorityWinFirst)

		// X O X / X O O / O X X
		play(t, controller, session, game,
			entity.Coords{Row: 0, Col: 0},
			entity.Coords{Row: 0, Col: 1},
			entity.Coords{Row: 0, Col: 2},
			entity.Coords{Row: 1, Col: 1},
			entity.Coords{Row: 1, Col: 0},
			entity.Coords{Row: 1, Col: 2},
			entity.Coords{Row: 2, Col: 1},
			entity.Coords{Row: 2, Col: 0},
			entity.Coords{Row: 2, Col: 2},
		)

		assert.True(t, game.IsEnded)
		assert.True(t, game.IsDraw())
		assert.Empty(t, game.WinnerID)
		assert.Equal(t, 9, game.NumSymbols)
	})

	t.Run("Rejects moves once the game ended", func(t *testing.T) {
		session := newHumanSession()
		game := entity.NewGame("g1", session.ID, session.Owner.ID)
		game.IsEnded = true
		before := *game

		err := newController(PriorityWinFirst).AddSymbol(session, game, entity.Coords{Row: 0, Col: 0})

		require.ErrorIs(t, err, apperror.ErrGameNotModifiable)
		assert.Equal(t, before, *game)
	})

	t.Run("Rejects occupied and out of range slots without changes", func(t *testing.T) {
		session := newHumanSession()
		game := entity.NewGame("g1", session.ID, session.Owner.ID)
		controller := newController(PriorityWinFirst)
		play(t, controller, session, game, entity.Coords{Row: 1, Col: 1})
		before := *game

		err := controller.AddSymbol(session, game, entity.Coords{Row: 1, Col: 1})
		require.ErrorIs(t, err, apperror.ErrMoveRejected)
		require.ErrorIs(t, err, apperror.ErrSlotTaken)
		assert.Equal(t, before, *game)

		err = controller.AddSymbol(session, game, entity.Coords{Row: 3, Col: 0})
		require.ErrorIs(t, err, apperror.ErrMoveRejected)
		require.ErrorIs(t, err, apperror.ErrOutOfRange)
		assert.Equal(t, before, *game)
	})
}

func TestGameController_AddSymbol_ComputerOpponent(t *testing.T) {
	t.Run("Computer replies inline and the owner stays active", func(t *testing.T) {
		// Given: a game against the computer
		session := newComputerSession()
		game := entity.NewGame("g1", session.ID, session.Owner.ID)
		controller := newController(PriorityWinFirst)

		// When: the owner plays (0, 1)
		err := controller.AddSymbol(session, game, entity.Coords{Row: 0, Col: 1})

		// Then: the computer took the first free slot in the same step
		require.NoError(t, err)
		assert.Equal(t, entity.Board{{o, x, n}, {n, n, n}, {n, n, n}}, game.Board)
		assert.Equal(t, "p1", game.ActivePlayerID)
		assert.Equal(t, 2, game.NumSymbols)
	})

	t.Run("Computer completes row 2 and wins", func(t *testing.T) {
		session := newComputerSession()
		game := entity.NewGame("g1", session.ID, session.Owner.ID)
		controller := newController(PriorityWinFirst)

		play(t, controller, session, game, entity.Coords{Row: 0, Col: 1})
		play(t, controller, session, game, entity.Coords{Row: 1, Col: 1})
		assert.Equal(t, entity.Board{{o, x, n}, {n, x, n}, {n, o, n}}, game.Board)

		play(t, controller, session, game, entity.Coords{Row: 0, Col: 2})
		assert.Equal(t, entity.Board{{o, x, x}, {n, x, n}, {o, o, n}}, game.Board)

		play(t, controller, session, game, entity.Coords{Row: 1, Col: 0})
		assert.Equal(t, entity.Board{{o, x, x}, {x, x, n}, {o, o, o}}, game.Board)
		assert.Equal(t, "c1", game.WinnerID)
		assert.True(t, game.IsEnded)
		assert.Equal(t, 8, game.NumSymbols)
	})

	t.Run("No computer reply after the owner wins", func(t *testing.T) {
		session := newComputerSession()
		game := entity.NewGame("g1", session.ID, session.Owner.ID)
		game.Board = entity.Board{{x, x, n}, {o, o, n}, {n, n, n}}
		game.NumSymbols = 4

		err := newController(PriorityWinFirst).AddSymbol(session, game, entity.Coords{Row: 0, Col: 2})

		require.NoError(t, err)
		assert.Equal(t, "p1", game.WinnerID)
		assert.Equal(t, entity.Board{{x, x, x}, {o, o, n}, {n, n, n}}, game.Board)
		assert.Equal(t, 5, game.NumSymbols)
	})

	t.Run("Computer failure leaves the game untouched", func(t *testing.T) {
		session := newComputerSession()
		game := entity.NewGame("g1", session.ID, session.Owner.ID)
		before := *game
		controller := NewGameController(x, o, failingStrategy{})

		err := controller.AddSymbol(session, game, entity.Coords{Row: 0, Col: 0})

		require.ErrorIs(t, err, apperror.ErrSlotNotAvailable)
		assert.Equal(t, before, *game)
	})
}

type failingStrategy struct{}

func (failingStrategy) NextMove(entity.Board, entity.Symbol, entity.Symbol) (entity.Coords, error) {
	return entity.Coords{}, apperror.ErrSlotNotAvailable
}
