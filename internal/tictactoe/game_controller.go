package tictactoe

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-sessions/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-sessions/internal/entity"
)

type moveStrategy interface {
	NextMove(board entity.Board, own, opponent entity.Symbol) (entity.Coords, error)
}

type GameController struct {
	ownerSymbol    entity.Symbol
	opponentSymbol entity.Symbol
	strategy       moveStrategy
}

func NewGameController(ownerSymbol, opponentSymbol entity.Symbol, strategy moveStrategy) *GameController {
	return &GameController{
		ownerSymbol:    ownerSymbol,
		opponentSymbol: opponentSymbol,
		strategy:       strategy,
	}
}

// AddSymbol plays coords for the game's active player and, against a computer seat,
// the computer's reply. The game is only changed when the whole step succeeds.
func (that *GameController) AddSymbol(session *entity.Session, game *entity.Game, coords entity.Coords) error {
	if err := game.ConfirmModifiable(); err != nil {
		return err
	}

	player, ok := session.Player(game.ActivePlayerID)
	if !ok {
		return fmt.Errorf("%w: active player is not seated", apperror.ErrGameNotModifiable)
	}

	next := *game

	symbol := that.symbolFor(session, player)
	if err := next.Board.AddSymbol(coords.Row, coords.Col, symbol); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrMoveRejected, err)
	}

	next.CheckEnd(player, symbol)

	if !next.IsEnded {
		if err := that.advance(session, &next, player); err != nil {
			return err
		}
	}

	next.UpdatedAt = time.Now().UTC()
	*game = next

	return nil
}

// advance hands the turn over: the computer replies inline, a human opponent becomes active.
func (that *GameController) advance(session *entity.Session, game *entity.Game, player *entity.Player) error {
	switch session.Opponent.Kind {
	case entity.SeatComputer:
		computer := session.Opponent.Player

		coords, err := that.strategy.NextMove(game.Board, that.opponentSymbol, that.ownerSymbol)
		if err != nil {
			return fmt.Errorf("computer failed to choose a slot: %w", err)
		}

		if err = game.Board.AddSymbol(coords.Row, coords.Col, that.opponentSymbol); err != nil {
			return fmt.Errorf("computer failed to make turn: %w", err)
		}

		game.CheckEnd(computer, that.opponentSymbol)
	case entity.SeatHuman:
		game.ActivePlayerID = session.OtherPlayer(player.ID).ID
	default:
		return apperror.ErrSessionNotReady
	}

	return nil
}

func (that *GameController) symbolFor(session *entity.Session, player *entity.Player) entity.Symbol {
	if session.IsOwner(player.ID) {
		return that.ownerSymbol
	}

	return that.opponentSymbol
}
