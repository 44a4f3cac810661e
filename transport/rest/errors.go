package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-sessions/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-sessions/internal/pkg"
)

const (
	tokenCookieName = "tictactoe_token"
	tokenCookieTTL  = 30 * 24 * time.Hour
)

var (
	errUnknownCaller = errors.New("caller is not a player of this session")
	errBadRequest    = errors.New("malformed request")
)

type errorResponse struct {
	Error string `json:"error"`
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errUnknownCaller):
		return http.StatusForbidden
	case errors.Is(err, errBadRequest), errors.Is(err, apperror.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrMoveRejected), errors.Is(err, apperror.ErrGameConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as a JSON error. Internal details are logged, never returned.
func fail(ctx echo.Context, log *slog.Logger, err error) error {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed", "error", err)
		return ctx.JSON(status, errorResponse{Error: http.StatusText(status)})
	}

	log.Debug("request rejected", "status", status, "error", err)

	return ctx.JSON(status, errorResponse{Error: err.Error()})
}

// callerToken returns the token from the caller's cookie, issuing a new one when missing.
func callerToken(ctx echo.Context) string {
	if cookie, err := ctx.Cookie(tokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	token := pkg.GenerateToken()
	ctx.SetCookie(&http.Cookie{
		Name:     tokenCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(tokenCookieTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return token
}
