package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-sessions/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-sessions/internal/entity"
	"github.com/rocketscienceinc/tictactoe-sessions/internal/usecase"
)

type fakeGames struct {
	mu      sync.Mutex
	state   *usecase.GameState
	lastTry entity.Coords
}

func (that *fakeGames) StartGame(context.Context, string, string) (*usecase.GameState, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.state = &usecase.GameState{GameID: "g1", IsActivePlayer: true}

	return that.state, nil
}

func (that *fakeGames) GetGameState(context.Context, string, string) (*usecase.GameState, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.state == nil {
		return nil, apperror.ErrNotFound
	}

	return that.state, nil
}

func (that *fakeGames) MakeTurn(_ context.Context, _, _ string, coords entity.Coords) (*usecase.GameState, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.lastTry = coords
	if that.state == nil {
		return nil, apperror.ErrGameNotModifiable
	}

	that.state = &usecase.GameState{GameID: that.state.GameID, NumSymbols: that.state.NumSymbols + 1}

	return that.state, nil
}

type fakeTokens map[string]string

func (that fakeTokens) PlayerID(_ context.Context, token, _ string) (string, error) {
	playerID, ok := that[token]
	if !ok {
		return "", apperror.ErrNotFound
	}

	return playerID, nil
}

type fakeEvents struct {
	events chan struct{}
}

func (that *fakeEvents) Subscribe(context.Context, string) (<-chan struct{}, func(), error) {
	return that.events, func() {}, nil
}

func newTestServer(t *testing.T) (*httptest.Server, *fakeGames, *fakeEvents) {
	t.Helper()

	games := &fakeGames{}
	events := &fakeEvents{events: make(chan struct{}, 1)}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	server := New(logger, "0", games, fakeTokens{"t1": "p1"}, events)
	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)

	return ts, games, events
}

func dial(t *testing.T, ts *httptest.Server, token string) (*websocket.Conn, *http.Response, error) {
	t.Helper()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/sessions/s1"
	header := http.Header{}
	if token != "" {
		header.Set("Cookie", tokenCookieName+"="+token)
	}

	return websocket.DefaultDialer.Dial(url, header)
}

func readMessage(t *testing.T, conn *websocket.Conn) (string, Payload) {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var message Message
	require.NoError(t, conn.ReadJSON(&message))

	var payload Payload
	if len(message.Payload) > 0 {
		require.NoError(t, json.Unmarshal(message.Payload, &payload))
	}

	return message.Action, payload
}

func TestServer_RejectsStrangers(t *testing.T) {
	ts, _, _ := newTestServer(t)

	for _, token := range []string{"", "unknown"} {
		conn, resp, err := dial(t, ts, token)

		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Nil(t, conn)
	}
}

func TestServer_StreamsGameState(t *testing.T) {
	ts, games, events := newTestServer(t)

	// Given: a seated player connects before any game exists
	conn, _, err := dial(t, ts, "t1")
	require.NoError(t, err)
	defer conn.Close()

	// Then: the player is told to wait
	action, _ := readMessage(t, conn)
	assert.Equal(t, actionGameWaiting, action)

	// When: the player starts a game over the socket
	require.NoError(t, conn.WriteJSON(Message{Action: actionGameNew}))

	// Then: the new game is returned
	action, payload := readMessage(t, conn)
	assert.Equal(t, actionGameState, action)
	require.NotNil(t, payload.Game)
	assert.Equal(t, "g1", payload.Game.GameID)

	// When: a move is sent
	require.NoError(t, conn.WriteJSON(Message{Action: actionGameTurn, Payload: json.RawMessage(`{"coords":[1,2]}`)}))

	// Then: the updated game comes back
	action, payload = readMessage(t, conn)
	assert.Equal(t, actionGameState, action)
	require.NotNil(t, payload.Game)
	assert.Equal(t, 1, payload.Game.NumSymbols)

	games.mu.Lock()
	assert.Equal(t, entity.Coords{Row: 1, Col: 2}, games.lastTry)
	games.mu.Unlock()

	// When: another instance publishes a change
	events.events <- struct{}{}

	// Then: the current state is pushed
	action, payload = readMessage(t, conn)
	assert.Equal(t, actionGameState, action)
	require.NotNil(t, payload.Game)
	assert.Equal(t, 1, payload.Game.NumSymbols)
}

func TestServer_ReportsBadMessages(t *testing.T) {
	ts, _, _ := newTestServer(t)

	conn, _, err := dial(t, ts, "t1")
	require.NoError(t, err)
	defer conn.Close()

	action, _ := readMessage(t, conn)
	require.Equal(t, actionGameWaiting, action)

	t.Run("Unknown action", func(t *testing.T) {
		require.NoError(t, conn.WriteJSON(Message{Action: "game:leave"}))

		action, payload := readMessage(t, conn)
		assert.Equal(t, actionError, action)
		assert.Contains(t, payload.Error, "game:leave")
	})

	t.Run("Malformed coords", func(t *testing.T) {
		require.NoError(t, conn.WriteJSON(Message{Action: actionGameTurn, Payload: json.RawMessage(`{"coords":[1]}`)}))

		action, payload := readMessage(t, conn)
		assert.Equal(t, actionError, action)
		assert.Equal(t, errMalformedCoords.Error(), payload.Error)
	})

	t.Run("Turn without a game", func(t *testing.T) {
		require.NoError(t, conn.WriteJSON(Message{Action: actionGameTurn, Payload: json.RawMessage(`{"coords":[0,0]}`)}))

		action, payload := readMessage(t, conn)
		assert.Equal(t, actionError, action)
		assert.Contains(t, payload.Error, apperror.ErrGameNotModifiable.Error())
	})
}

func newHeartbeatServer(t *testing.T) *httptest.Server {
	t.Helper()

	events := &fakeEvents{events: make(chan struct{}, 1)}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	server := New(logger, "0", &fakeGames{}, fakeTokens{"t1": "p1"}, events)
	server.heartbeat = heartbeat{pingInterval: 20 * time.Millisecond, pongWait: 150 * time.Millisecond}

	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)

	return ts
}

func TestServer_Heartbeat(t *testing.T) {
	t.Run("Peer that answers pings stays connected", func(t *testing.T) {
		ts := newHeartbeatServer(t)

		conn, _, err := dial(t, ts, "t1")
		require.NoError(t, err)
		defer conn.Close()

		action, _ := readMessage(t, conn)
		require.Equal(t, actionGameWaiting, action)

		require.NoError(t, conn.WriteJSON(Message{Action: actionGameNew}))
		action, _ = readMessage(t, conn)
		require.Equal(t, actionGameState, action)

		// When: the peer keeps reading, which answers pings, for longer than the pong wait
		for i := range 15 {
			time.Sleep(25 * time.Millisecond)

			require.NoError(t, conn.WriteJSON(Message{Action: actionGameTurn, Payload: json.RawMessage(`{"coords":[0,0]}`)}))

			// Then: every move is still answered
			action, payload := readMessage(t, conn)
			require.Equal(t, actionGameState, action)
			require.NotNil(t, payload.Game)
			assert.Equal(t, i+1, payload.Game.NumSymbols)
		}
	})

	t.Run("Silent peer is dropped", func(t *testing.T) {
		ts := newHeartbeatServer(t)

		// Given: a peer that never reads, so it never answers a ping
		conn, _, err := dial(t, ts, "t1")
		require.NoError(t, err)
		defer conn.Close()

		// When: the pong wait passes several times over
		time.Sleep(600 * time.Millisecond)

		// Then: the server has closed the connection
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

		var readErr error
		for readErr == nil {
			_, _, readErr = conn.ReadMessage()
		}

		var netErr net.Error
		if errors.As(readErr, &netErr) {
			assert.False(t, netErr.Timeout(), "connection should be closed by the server, got %v", readErr)
		}
	})
}
