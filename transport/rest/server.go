package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	logger *slog.Logger
	echo   *echo.Echo
	port   string
}

func NewServer(logger *slog.Logger, port string, sessions SessionHandler, games GameHandler) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 10 * time.Second
	e.Server.IdleTimeout = 30 * time.Second

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))

	e.GET("/ping", NewPingHandler().Ping)

	api := e.Group("/api/sessions")
	api.POST("", sessions.CreateSession)
	api.GET("/:id", sessions.GetSession)
	api.POST("/:id/players", sessions.JoinSession)
	api.POST("/:id/invite", sessions.Invite)

	api.POST("/:id/games", games.StartGame)
	api.GET("/:id/games", games.ListGames)
	api.GET("/:id/games/:gameID", games.GetGameByID)
	api.GET("/:id/game", games.GetGame)
	api.POST("/:id/game", games.MakeTurn)

	return &Server{
		logger: logger,
		echo:   e,
		port:   port,
	}
}

func (that *Server) Handler() http.Handler {
	return that.echo
}

// Start - starts HTTP server, returns nil after Shutdown.
func (that *Server) Start() error {
	if err := that.echo.Start(":" + that.port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) Shutdown(ctx context.Context) error {
	return that.echo.Shutdown(ctx)
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(_ echo.Context, values middleware.RequestLoggerValues) error {
			logger.Debug("request",
				"method", values.Method,
				"uri", values.URI,
				"status", values.Status,
				"latency", values.Latency,
			)

			return nil
		},
	})
}
