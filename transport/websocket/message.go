package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-sessions/internal/usecase"
)

const (
	actionGameState   = "game:state"
	actionGameWaiting = "game:waiting"
	actionGameNew     = "game:new"
	actionGameTurn    = "game:turn"
	actionError       = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	Game   *usecase.GameState `json:"game,omitempty"`
	Coords []int              `json:"coords,omitempty"`
	Error  string             `json:"error,omitempty"`
}

func encodeMessage(action string, payload Payload) ([]byte, error) {
	rawPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	message, err := json.Marshal(Message{Action: action, Payload: rawPayload})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	return message, nil
}
