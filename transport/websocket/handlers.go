package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-sessions/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-sessions/internal/entity"
)

var errMalformedCoords = errors.New("coords must be [row, col]")

type client struct {
	conn      *websocket.Conn
	sessionID string
	playerID  string
	send      chan []byte
	heartbeat heartbeat
}

func newClient(conn *websocket.Conn, sessionID, playerID string, heartbeat heartbeat) *client {
	return &client{
		conn:      conn,
		sessionID: sessionID,
		playerID:  playerID,
		send:      make(chan []byte, sendBuffer),
		heartbeat: heartbeat,
	}
}

// extendReadDeadline gives the peer another pongWait to show it is alive.
func (that *client) extendReadDeadline() error {
	return that.conn.SetReadDeadline(time.Now().Add(that.heartbeat.pongWait))
}

// writeWithHeartbeat owns all writes to the connection.
func (that *client) writeWithHeartbeat(ctx context.Context) error {
	ticker := time.NewTicker(that.heartbeat.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			deadline := time.Now().Add(writeWait)
			closing := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
			_ = that.conn.WriteControl(websocket.CloseMessage, closing, deadline)

			return nil
		case message := <-that.send:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return fmt.Errorf("failed to write message: %w", err)
			}
		case <-ticker.C:
			if err := that.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return fmt.Errorf("failed to write ping: %w", err)
			}
		}
	}
}

func (that *client) enqueue(ctx context.Context, message []byte) {
	select {
	case that.send <- message:
	case <-ctx.Done():
	}
}

func (that *Server) handleNewGame(ctx context.Context, client *client, _ *Message) error {
	state, err := that.games.StartGame(ctx, client.sessionID, client.playerID)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	// the other player learns about it from the published event
	return that.send(ctx, client, actionGameState, Payload{Game: state})
}

func (that *Server) handleGameTurn(ctx context.Context, client *client, message *Message) error {
	var payload Payload
	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if len(payload.Coords) != 2 {
		return errMalformedCoords
	}

	coords := entity.Coords{Row: payload.Coords[0], Col: payload.Coords[1]}

	state, err := that.games.MakeTurn(ctx, client.sessionID, client.playerID, coords)
	if err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	return that.send(ctx, client, actionGameState, Payload{Game: state})
}

// pushState sends the current game of the client's session, or game:waiting before the first game.
func (that *Server) pushState(ctx context.Context, client *client) {
	log := that.logger.With("method", "pushState", "session_id", client.sessionID)

	state, err := that.games.GetGameState(ctx, client.sessionID, client.playerID)

	switch {
	case errors.Is(err, apperror.ErrNotFound):
		err = that.send(ctx, client, actionGameWaiting, Payload{})
	case err != nil:
		log.Error("failed to get game state", "error", err)
		err = that.send(ctx, client, actionError, Payload{Error: "failed to get the game"})
	default:
		err = that.send(ctx, client, actionGameState, Payload{Game: state})
	}

	if err != nil {
		log.Error("failed to send game state", "error", err)
	}
}

func (that *Server) sendError(ctx context.Context, client *client, reason string) {
	if err := that.send(ctx, client, actionError, Payload{Error: reason}); err != nil {
		that.logger.Error("failed to send error", "error", err)
	}
}

func (that *Server) send(ctx context.Context, client *client, action string, payload Payload) error {
	message, err := encodeMessage(action, payload)
	if err != nil {
		return err
	}

	client.enqueue(ctx, message)

	return nil
}
