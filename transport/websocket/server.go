package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-sessions/internal/entity"
	"github.com/rocketscienceinc/tictactoe-sessions/internal/usecase"
)

const (
	tokenCookieName = "tictactoe_token"

	writeWait      = 10 * time.Second
	pingInterval   = 30 * time.Second
	pongWait       = 2 * pingInterval
	maxMessageSize = 4096
	sendBuffer     = 8
)

// heartbeat drops a peer that stops answering pings within pongWait.
type heartbeat struct {
	pingInterval time.Duration
	pongWait     time.Duration
}

type gameManager interface {
	StartGame(ctx context.Context, sessionID, playerID string) (*usecase.GameState, error)
	GetGameState(ctx context.Context, sessionID, playerID string) (*usecase.GameState, error)
	MakeTurn(ctx context.Context, sessionID, playerID string, coords entity.Coords) (*usecase.GameState, error)
}

type tokenStore interface {
	PlayerID(ctx context.Context, token, sessionID string) (string, error)
}

type gameEvents interface {
	Subscribe(ctx context.Context, sessionID string) (<-chan struct{}, func(), error)
}

type handlerFunc func(ctx context.Context, client *client, message *Message) error

type Server struct {
	logger   *slog.Logger
	upgrader websocket.Upgrader

	games  gameManager
	tokens tokenStore
	events gameEvents

	handlers  map[string]handlerFunc
	heartbeat heartbeat
	srv       *http.Server
}

func New(logger *slog.Logger, port string, games gameManager, tokens tokenStore, events gameEvents) *Server {
	server := &Server{
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},

		games:  games,
		tokens: tokens,
		events: events,

		handlers: make(map[string]handlerFunc),

		heartbeat: heartbeat{
			pingInterval: pingInterval,
			pongWait:     pongWait,
		},
	}

	server.handlers[actionGameNew] = server.handleNewGame
	server.handlers[actionGameTurn] = server.handleGameTurn

	server.srv = &http.Server{
		Addr:              ":" + port,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	return server
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws/sessions/{id}", that.upgradeToWebSocket)

	return mux
}

// Start - starts WebSocket server, returns nil after Shutdown.
func (that *Server) Start() error {
	if err := that.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) Shutdown(ctx context.Context) error {
	return that.srv.Shutdown(ctx)
}

// upgradeToWebSocket - upgrades the connection of a seated player and streams the game of its session.
func (that *Server) upgradeToWebSocket(writer http.ResponseWriter, req *http.Request) {
	sessionID := req.PathValue("id")
	log := that.logger.With("method", "upgradeToWebSocket", "session_id", sessionID)

	cookie, err := req.Cookie(tokenCookieName)
	if err != nil {
		http.Error(writer, "not a player of this session", http.StatusForbidden)
		return
	}

	playerID, err := that.tokens.PlayerID(req.Context(), cookie.Value, sessionID)
	if err != nil {
		http.Error(writer, "not a player of this session", http.StatusForbidden)
		return
	}

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(req.Context())
	defer cancel()

	events, unsubscribe, err := that.events.Subscribe(ctx, sessionID)
	if err != nil {
		log.Error("failed to subscribe to game events", "error", err)
		return
	}
	defer unsubscribe()

	client := newClient(conn, sessionID, playerID, that.heartbeat)

	go func() {
		defer cancel()

		if err := client.writeWithHeartbeat(ctx); err != nil {
			log.Debug("write loop stopped", "error", err)
		}
	}()

	go func() {
		defer cancel()

		that.handleMessages(ctx, client)
	}()

	log.Info("WebSocket connection established", "player_id", playerID)

	that.pushState(ctx, client)

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-events:
			if !ok {
				return
			}

			that.pushState(ctx, client)
		}
	}
}

// handleMessages - processes messages from the client until the connection fails.
func (that *Server) handleMessages(ctx context.Context, client *client) {
	log := that.logger.With("method", "handleMessages", "session_id", client.sessionID)

	client.conn.SetReadLimit(maxMessageSize)
	if err := client.extendReadDeadline(); err != nil {
		log.Debug("failed to set read deadline", "error", err)
		return
	}

	client.conn.SetPongHandler(func(string) error {
		return client.extendReadDeadline()
	})

	for {
		var message Message
		if err := client.conn.ReadJSON(&message); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug("error reading message", "error", err)
			}

			return
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			that.sendError(ctx, client, fmt.Sprintf("unknown action %q", message.Action))
			continue
		}

		if err := handler(ctx, client, &message); err != nil {
			log.Debug("error processing message", "action", message.Action, "error", err)
			that.sendError(ctx, client, err.Error())
		}
	}
}
