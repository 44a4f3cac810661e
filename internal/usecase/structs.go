package usecase

import (
	"time"

	"github.com/rocketscienceinc/tictactoe-sessions/internal/codec"
	"github.com/rocketscienceinc/tictactoe-sessions/internal/entity"
	"github.com/rocketscienceinc/tictactoe-sessions/internal/tictactoe"
)

// Rules are the session settings fixed by configuration.
type Rules struct {
	OwnerSymbol    entity.Symbol
	OpponentSymbol entity.Symbol
	ComputerName   string
	Strategy       *tictactoe.Strategy
}

type Scores struct {
	Owner    int `json:"owner"`
	Opponent int `json:"opponent"`
}

// GameState is the active game as seen by one player of the session.
type GameState struct {
	GameID         string     `json:"game_id"`
	Board          codec.Grid `json:"board"`
	NumSymbols     int        `json:"num_symbols"`
	ActivePlayer   *string    `json:"active_player"`
	IsActivePlayer bool       `json:"is_active_player"`
	Winner         *string    `json:"winner"`
	IsEnded        bool       `json:"is_ended"`
	Scores         Scores     `json:"scores"`
}

func newGameState(session *entity.Session, game *entity.Game, playerID string, scores Scores) *GameState {
	return &GameState{
		GameID:         game.ID,
		Board:          codec.EncodeBoard(game.Board),
		NumSymbols:     game.NumSymbols,
		ActivePlayer:   playerName(session, game.ActivePlayerID),
		IsActivePlayer: !game.IsEnded && game.IsActivePlayer(playerID),
		Winner:         playerName(session, game.WinnerID),
		IsEnded:        game.IsEnded,
		Scores:         scores,
	}
}

func playerName(session *entity.Session, playerID string) *string {
	player, ok := session.Player(playerID)
	if !ok {
		return nil
	}

	return &player.Name
}

// GameSummary is one entry of a session's game history.
type GameSummary struct {
	GameID     string    `json:"game_id"`
	NumSymbols int       `json:"num_symbols"`
	Winner     *string   `json:"winner"`
	IsDraw     bool      `json:"is_draw"`
	IsActive   bool      `json:"is_active"`
	IsEnded    bool      `json:"is_ended"`
	CreatedAt  time.Time `json:"created_at"`
}

func newGameSummary(session *entity.Session, game *entity.Game) GameSummary {
	return GameSummary{
		GameID:     game.ID,
		NumSymbols: game.NumSymbols,
		Winner:     playerName(session, game.WinnerID),
		IsDraw:     game.IsDraw(),
		IsActive:   game.IsActive,
		IsEnded:    game.IsEnded,
		CreatedAt:  game.CreatedAt,
	}
}
