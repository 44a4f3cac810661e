package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-sessions/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-sessions/internal/entity"
	"github.com/rocketscienceinc/tictactoe-sessions/internal/usecase"
)

type gameManager interface {
	CreateSession(ctx context.Context, name, playerName, mode string) (*entity.Session, error)
	JoinSession(ctx context.Context, sessionID, playerName string) (*entity.Player, error)
	GetSession(ctx context.Context, sessionID string) (*entity.Session, error)

	StartGame(ctx context.Context, sessionID, playerID string) (*usecase.GameState, error)
	GetGameState(ctx context.Context, sessionID, playerID string) (*usecase.GameState, error)
	MakeTurn(ctx context.Context, sessionID, playerID string, coords entity.Coords) (*usecase.GameState, error)

	ListGames(ctx context.Context, sessionID, playerID string) ([]usecase.GameSummary, error)
	GetGame(ctx context.Context, sessionID, playerID, gameID string) (*usecase.GameState, error)
}

type tokenStore interface {
	PlayerID(ctx context.Context, token, sessionID string) (string, error)
	SetPlayerID(ctx context.Context, token, sessionID, playerID string) error
}

type inviteService interface {
	JoinURL(sessionID string) (string, error)
	Invite(ctx context.Context, sessionID, inviter, email string) error
}

type SessionHandler interface {
	CreateSession(ctx echo.Context) error
	GetSession(ctx echo.Context) error
	JoinSession(ctx echo.Context) error
	Invite(ctx echo.Context) error
}

type createSessionRequest struct {
	Name       string `json:"name"`
	PlayerName string `json:"player_name"`
	GameMode   string `json:"game_mode"`
}

type joinSessionRequest struct {
	Name string `json:"name"`
}

type inviteRequest struct {
	Email string `json:"email"`
}

type sessionResponse struct {
	SessionID string         `json:"session_id"`
	Name      string         `json:"name"`
	GameMode  string         `json:"game_mode"`
	IsReady   bool           `json:"is_ready"`
	Owner     string         `json:"owner"`
	Opponent  *string        `json:"opponent"`
	JoinURL   string         `json:"join_url,omitempty"`
	Player    *entity.Player `json:"player,omitempty"`
}

type sessionHandler struct {
	logger *slog.Logger

	games   gameManager
	tokens  tokenStore
	invites inviteService
}

func NewSessionHandler(logger *slog.Logger, games gameManager, tokens tokenStore, invites inviteService) SessionHandler {
	return &sessionHandler{
		logger:  logger,
		games:   games,
		tokens:  tokens,
		invites: invites,
	}
}

func (that *sessionHandler) CreateSession(ctx echo.Context) error {
	log := that.logger.With("method", "CreateSession")

	var req createSessionRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, log, fmt.Errorf("%w: %w", errBadRequest, err))
	}

	if req.GameMode == "" {
		req.GameMode = entity.ModeHuman
	}

	reqCtx := ctx.Request().Context()

	session, err := that.games.CreateSession(reqCtx, req.Name, req.PlayerName, req.GameMode)
	if err != nil {
		return fail(ctx, log, err)
	}

	if err = that.tokens.SetPlayerID(reqCtx, callerToken(ctx), session.ID, session.Owner.ID); err != nil {
		return fail(ctx, log, err)
	}

	resp := that.describe(session)
	resp.Player = session.Owner

	log.Info("session created", "session_id", session.ID, "mode", req.GameMode)

	return ctx.JSON(http.StatusCreated, resp)
}

func (that *sessionHandler) GetSession(ctx echo.Context) error {
	log := that.logger.With("method", "GetSession")

	session, err := that.games.GetSession(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return fail(ctx, log, err)
	}

	return ctx.JSON(http.StatusOK, that.describe(session))
}

func (that *sessionHandler) JoinSession(ctx echo.Context) error {
	log := that.logger.With("method", "JoinSession")

	var req joinSessionRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, log, fmt.Errorf("%w: %w", errBadRequest, err))
	}

	reqCtx := ctx.Request().Context()
	sessionID := ctx.Param("id")
	token := callerToken(ctx)

	// joining twice from the same browser returns the seat it already has
	if playerID, err := that.tokens.PlayerID(reqCtx, token, sessionID); err == nil {
		session, err := that.games.GetSession(reqCtx, sessionID)
		if err != nil {
			return fail(ctx, log, err)
		}

		if player, ok := session.Player(playerID); ok {
			return ctx.JSON(http.StatusOK, map[string]*entity.Player{"player": player})
		}
	}

	player, err := that.games.JoinSession(reqCtx, sessionID, req.Name)
	if err != nil {
		return fail(ctx, log, err)
	}

	if err = that.tokens.SetPlayerID(reqCtx, token, sessionID, player.ID); err != nil {
		return fail(ctx, log, err)
	}

	log.Info("player joined", "session_id", sessionID, "player_id", player.ID)

	return ctx.JSON(http.StatusCreated, map[string]*entity.Player{"player": player})
}

func (that *sessionHandler) Invite(ctx echo.Context) error {
	log := that.logger.With("method", "Invite")

	var req inviteRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, log, fmt.Errorf("%w: %w", errBadRequest, err))
	}

	reqCtx := ctx.Request().Context()
	sessionID := ctx.Param("id")

	session, player, err := callerPlayer(ctx, that.tokens, that.games, sessionID)
	if err != nil {
		return fail(ctx, log, err)
	}

	if session.IsReady() {
		return fail(ctx, log, apperror.ErrSessionFull)
	}

	if err = that.invites.Invite(reqCtx, sessionID, player.Name, req.Email); err != nil {
		return fail(ctx, log, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

func (that *sessionHandler) describe(session *entity.Session) sessionResponse {
	mode := entity.ModeHuman
	if session.HasComputer() {
		mode = entity.ModeComputer
	}

	resp := sessionResponse{
		SessionID: session.ID,
		Name:      session.Name,
		GameMode:  mode,
		IsReady:   session.IsReady(),
		Owner:     session.Owner.Name,
	}

	if session.Opponent.Player != nil {
		resp.Opponent = &session.Opponent.Player.Name
	}

	if joinURL, err := that.invites.JoinURL(session.ID); err == nil && !session.IsReady() {
		resp.JoinURL = joinURL
	}

	return resp
}

// callerPlayer resolves the session and the player the caller's cookie is bound to.
func callerPlayer(ctx echo.Context, tokens tokenStore, games gameManager, sessionID string) (*entity.Session, *entity.Player, error) {
	cookie, err := ctx.Cookie(tokenCookieName)
	if err != nil || cookie.Value == "" {
		return nil, nil, errUnknownCaller
	}

	reqCtx := ctx.Request().Context()

	playerID, err := tokens.PlayerID(reqCtx, cookie.Value, sessionID)
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, nil, errUnknownCaller
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve caller: %w", err)
	}

	session, err := games.GetSession(reqCtx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	player, ok := session.Player(playerID)
	if !ok {
		return nil, nil, errUnknownCaller
	}

	return session, player, nil
}
