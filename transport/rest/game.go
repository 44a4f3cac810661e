package rest

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-sessions/internal/entity"
)

type GameHandler interface {
	StartGame(ctx echo.Context) error
	GetGame(ctx echo.Context) error
	MakeTurn(ctx echo.Context) error
	ListGames(ctx echo.Context) error
	GetGameByID(ctx echo.Context) error
}

type turnRequest struct {
	Coords []int `json:"coords"`
}

type gameHandler struct {
	logger *slog.Logger

	games  gameManager
	tokens tokenStore
}

func NewGameHandler(logger *slog.Logger, games gameManager, tokens tokenStore) GameHandler {
	return &gameHandler{
		logger: logger,
		games:  games,
		tokens: tokens,
	}
}

func (that *gameHandler) StartGame(ctx echo.Context) error {
	log := that.logger.With("method", "StartGame")

	sessionID := ctx.Param("id")

	_, player, err := callerPlayer(ctx, that.tokens, that.games, sessionID)
	if err != nil {
		return fail(ctx, log, err)
	}

	state, err := that.games.StartGame(ctx.Request().Context(), sessionID, player.ID)
	if err != nil {
		return fail(ctx, log, err)
	}

	return ctx.JSON(http.StatusCreated, state)
}

func (that *gameHandler) GetGame(ctx echo.Context) error {
	log := that.logger.With("method", "GetGame")

	sessionID := ctx.Param("id")

	_, player, err := callerPlayer(ctx, that.tokens, that.games, sessionID)
	if err != nil {
		return fail(ctx, log, err)
	}

	state, err := that.games.GetGameState(ctx.Request().Context(), sessionID, player.ID)
	if err != nil {
		return fail(ctx, log, err)
	}

	return ctx.JSON(http.StatusOK, state)
}

func (that *gameHandler) MakeTurn(ctx echo.Context) error {
	log := that.logger.With("method", "MakeTurn")

	var req turnRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, log, fmt.Errorf("%w: %w", errBadRequest, err))
	}

	if len(req.Coords) != 2 {
		return fail(ctx, log, fmt.Errorf("%w: coords must be [row, col]", errBadRequest))
	}

	sessionID := ctx.Param("id")

	_, player, err := callerPlayer(ctx, that.tokens, that.games, sessionID)
	if err != nil {
		return fail(ctx, log, err)
	}

	coords := entity.Coords{Row: req.Coords[0], Col: req.Coords[1]}

	state, err := that.games.MakeTurn(ctx.Request().Context(), sessionID, player.ID, coords)
	if err != nil {
		return fail(ctx, log, err)
	}

	return ctx.JSON(http.StatusOK, state)
}

// ListGames returns the session's game history.
func (that *gameHandler) ListGames(ctx echo.Context) error {
	log := that.logger.With("method", "ListGames")

	sessionID := ctx.Param("id")

	_, player, err := callerPlayer(ctx, that.tokens, that.games, sessionID)
	if err != nil {
		return fail(ctx, log, err)
	}

	games, err := that.games.ListGames(ctx.Request().Context(), sessionID, player.ID)
	if err != nil {
		return fail(ctx, log, err)
	}

	return ctx.JSON(http.StatusOK, games)
}

func (that *gameHandler) GetGameByID(ctx echo.Context) error {
	log := that.logger.With("method", "GetGameByID")

	sessionID := ctx.Param("id")

	_, player, err := callerPlayer(ctx, that.tokens, that.games, sessionID)
	if err != nil {
		return fail(ctx, log, err)
	}

	state, err := that.games.GetGame(ctx.Request().Context(), sessionID, player.ID, ctx.Param("gameID"))
	if err != nil {
		return fail(ctx, log, err)
	}

	return ctx.JSON(http.StatusOK, state)
}
