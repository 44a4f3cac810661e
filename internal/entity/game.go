package entity

import (
	"time"

	"github.com/rocketscienceinc/tictactoe-sessions/internal/apperror"
)

type Game struct {
	ID             string
	SessionID      string
	Board          Board
	NumSymbols     int
	ActivePlayerID string
	WinnerID       string
	IsActive       bool
	IsEnded        bool
	Version        int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewGame returns an active game with an empty board waiting for activePlayerID.
func NewGame(id, sessionID, activePlayerID string) *Game {
	now := time.Now().UTC()

	return &Game{
		ID:             id,
		SessionID:      sessionID,
		ActivePlayerID: activePlayerID,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (that *Game) HasWinner() bool {
	return that.WinnerID != ""
}

// IsDraw is false for a game closed early by a restart.
func (that *Game) IsDraw() bool {
	return that.IsEnded && !that.HasWinner() && that.Board.IsFull()
}

func (that *Game) IsActivePlayer(playerID string) bool {
	return that.ActivePlayerID == playerID
}

// ConfirmModifiable reports whether moves may still be applied to the game.
func (that *Game) ConfirmModifiable() error {
	if !that.IsActive || that.IsEnded {
		return apperror.ErrGameNotModifiable
	}

	return nil
}

// CheckEnd records the outcome of a placement made by player with symbol.
func (that *Game) CheckEnd(player *Player, symbol Symbol) {
	switch {
	case that.Board.HasSeriesComplete(symbol):
		that.WinnerID = player.ID
		that.IsEnded = true
	case that.Board.IsFull():
		that.IsEnded = true
	}

	that.NumSymbols++
}
