package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-sessions/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-sessions/internal/entity"
	"github.com/rocketscienceinc/tictactoe-sessions/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-sessions/internal/tictactoe"
)

var (
	ErrPlayerNotInSession = fmt.Errorf("player %w in session", apperror.ErrNotFound)
	ErrGameNotInSession   = fmt.Errorf("game %w in session", apperror.ErrNotFound)
	ErrInvalidGameMode    = fmt.Errorf("%w: game mode must be human or computer", apperror.ErrInvalidInput)
	ErrEmptyPlayerName    = fmt.Errorf("%w: player name is required", apperror.ErrInvalidInput)
)

type sessionRepo interface {
	Create(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	SeatOpponent(ctx context.Context, sessionID string, seat entity.Seat) error
}

type gameRepo interface {
	Start(ctx context.Context, game *entity.Game) error
	GetActive(ctx context.Context, sessionID string) (*entity.Game, error)
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	ListBySession(ctx context.Context, sessionID string) ([]*entity.Game, error)
	Update(ctx context.Context, game *entity.Game) error
	CountWins(ctx context.Context, playerID string) (int, error)
}

type gamePublisher interface {
	Publish(ctx context.Context, sessionID string) error
}

type GameManager struct {
	logger *slog.Logger

	sessionRepo sessionRepo
	gameRepo    gameRepo
	publisher   gamePublisher

	rules      Rules
	controller *tictactoe.GameController
}

func NewGameManager(logger *slog.Logger, sessionRepo sessionRepo, gameRepo gameRepo, publisher gamePublisher, rules Rules) *GameManager {
	if rules.Strategy == nil {
		rules.Strategy = tictactoe.NewStrategy(tictactoe.PriorityWinFirst, nil)
	}

	return &GameManager{
		logger: logger,

		sessionRepo: sessionRepo,
		gameRepo:    gameRepo,
		publisher:   publisher,

		rules:      rules,
		controller: tictactoe.NewGameController(rules.OwnerSymbol, rules.OpponentSymbol, rules.Strategy),
	}
}

// CreateSession opens a session owned by a new player. In computer mode the second seat is filled at once.
func (that *GameManager) CreateSession(ctx context.Context, name, playerName, mode string) (*entity.Session, error) {
	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return nil, ErrEmptyPlayerName
	}

	owner := entity.NewPlayer(pkg.GeneratePlayerID(), playerName, that.rules.OwnerSymbol)
	session := entity.NewSession(pkg.GenerateSessionID(), strings.TrimSpace(name), owner)

	switch mode {
	case entity.ModeHuman:
	case entity.ModeComputer:
		computer := entity.NewComputerPlayer(pkg.GeneratePlayerID(), that.rules.ComputerName, that.rules.OpponentSymbol)
		session.Opponent = entity.ComputerSeat(computer)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidGameMode, mode)
	}

	if err := that.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	that.logger.Debug("session created", "session_id", session.ID, "mode", mode)

	return session, nil
}

// JoinSession seats a new human player in the second seat.
func (that *GameManager) JoinSession(ctx context.Context, sessionID, playerName string) (*entity.Player, error) {
	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return nil, ErrEmptyPlayerName
	}

	session, err := that.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if session.IsReady() {
		return nil, apperror.ErrSessionFull
	}

	player := entity.NewPlayer(pkg.GeneratePlayerID(), playerName, that.rules.OpponentSymbol)
	if err = that.sessionRepo.SeatOpponent(ctx, sessionID, entity.HumanSeat(player)); err != nil {
		return nil, fmt.Errorf("failed to join session: %w", err)
	}

	that.publish(ctx, sessionID)

	return player, nil
}

func (that *GameManager) GetSession(ctx context.Context, sessionID string) (*entity.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// StartGame replaces the session's active game, if any, with a new one the owner opens.
func (that *GameManager) StartGame(ctx context.Context, sessionID, playerID string) (*GameState, error) {
	session, err := that.seatedSession(ctx, sessionID, playerID)
	if err != nil {
		return nil, err
	}

	if !session.IsReady() {
		return nil, apperror.ErrSessionNotReady
	}

	game := entity.NewGame(pkg.GenerateGameID(), session.ID, session.Owner.ID)
	if err = that.gameRepo.Start(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	that.logger.Debug("game started", "session_id", session.ID, "game_id", game.ID)
	that.publish(ctx, sessionID)

	return that.gameState(ctx, session, game, playerID)
}

func (that *GameManager) GetGameState(ctx context.Context, sessionID, playerID string) (*GameState, error) {
	session, err := that.seatedSession(ctx, sessionID, playerID)
	if err != nil {
		return nil, err
	}

	game, err := that.gameRepo.GetActive(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active game: %w", err)
	}

	return that.gameState(ctx, session, game, playerID)
}

// MakeTurn plays coords for playerID in the session's active game and stores the result,
// including the computer's reply, as one update.
func (that *GameManager) MakeTurn(ctx context.Context, sessionID, playerID string, coords entity.Coords) (*GameState, error) {
	log := that.logger.With("method", "MakeTurn", "session_id", sessionID)

	session, err := that.seatedSession(ctx, sessionID, playerID)
	if err != nil {
		return nil, err
	}

	game, err := that.gameRepo.GetActive(ctx, sessionID)
	if errors.Is(err, apperror.ErrNotFound) {
		// without an active game there is nothing to move on
		return nil, apperror.ErrGameNotModifiable
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active game: %w", err)
	}

	if err = game.ConfirmModifiable(); err != nil {
		return nil, err
	}

	if !game.IsActivePlayer(playerID) {
		return nil, apperror.ErrNotYourTurn
	}

	if err = that.controller.AddSymbol(session, game, coords); err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if err = that.gameRepo.Update(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	if game.IsEnded {
		log.Info("game ended", "game_id", game.ID, "winner_id", game.WinnerID)
	}

	that.publish(ctx, sessionID)

	return that.gameState(ctx, session, game, playerID)
}

// GetGame returns any game of the session, finished or not, as seen by playerID.
func (that *GameManager) GetGame(ctx context.Context, sessionID, playerID, gameID string) (*GameState, error) {
	session, err := that.seatedSession(ctx, sessionID, playerID)
	if err != nil {
		return nil, err
	}

	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if game.SessionID != session.ID {
		return nil, ErrGameNotInSession
	}

	return that.gameState(ctx, session, game, playerID)
}

// ListGames returns the session's game history, oldest first.
func (that *GameManager) ListGames(ctx context.Context, sessionID, playerID string) ([]GameSummary, error) {
	session, err := that.seatedSession(ctx, sessionID, playerID)
	if err != nil {
		return nil, err
	}

	games, err := that.gameRepo.ListBySession(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	summaries := make([]GameSummary, 0, len(games))
	for _, game := range games {
		summaries = append(summaries, newGameSummary(session, game))
	}

	return summaries, nil
}

// Scores counts the games each seated player has won.
func (that *GameManager) Scores(ctx context.Context, session *entity.Session) (Scores, error) {
	var (
		scores Scores
		err    error
	)

	if scores.Owner, err = that.gameRepo.CountWins(ctx, session.Owner.ID); err != nil {
		return Scores{}, fmt.Errorf("failed to count owner wins: %w", err)
	}

	if session.Opponent.Player != nil {
		if scores.Opponent, err = that.gameRepo.CountWins(ctx, session.Opponent.Player.ID); err != nil {
			return Scores{}, fmt.Errorf("failed to count opponent wins: %w", err)
		}
	}

	return scores, nil
}

func (that *GameManager) seatedSession(ctx context.Context, sessionID, playerID string) (*entity.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if _, ok := session.Player(playerID); !ok {
		return nil, ErrPlayerNotInSession
	}

	return session, nil
}

func (that *GameManager) gameState(ctx context.Context, session *entity.Session, game *entity.Game, playerID string) (*GameState, error) {
	scores, err := that.Scores(ctx, session)
	if err != nil {
		return nil, err
	}

	return newGameState(session, game, playerID, scores), nil
}

// publish notifies watchers. The change is already stored, so a failure is only logged.
func (that *GameManager) publish(ctx context.Context, sessionID string) {
	if err := that.publisher.Publish(ctx, sessionID); err != nil {
		that.logger.Warn("failed to publish game event", "session_id", sessionID, "error", err)
	}
}
