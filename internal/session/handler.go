// Package session maps a caller's cookie token to values scoped to one game session,
// such as the player the caller plays as.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const KeyPrefix = "game-session"

const ItemPlayerID = "player_id"

var ErrInvalidKey = errors.New("token, session and item must be non-empty and free of ':'")

type keyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type Handler struct {
	store keyValueStore
}

func NewHandler(store keyValueStore) *Handler {
	return &Handler{
		store: store,
	}
}

func (that *Handler) Get(ctx context.Context, token, sessionID, item string) (string, error) {
	key, err := Key(token, sessionID, item)
	if err != nil {
		return "", err
	}

	value, err := that.store.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", item, err)
	}

	return value, nil
}

func (that *Handler) Set(ctx context.Context, token, sessionID, item, value string) error {
	key, err := Key(token, sessionID, item)
	if err != nil {
		return err
	}

	if err = that.store.Set(ctx, key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", item, err)
	}

	return nil
}

// PlayerID returns the player the token plays as in sessionID.
func (that *Handler) PlayerID(ctx context.Context, token, sessionID string) (string, error) {
	return that.Get(ctx, token, sessionID, ItemPlayerID)
}

func (that *Handler) SetPlayerID(ctx context.Context, token, sessionID, playerID string) error {
	return that.Set(ctx, token, sessionID, ItemPlayerID, playerID)
}

// Key builds "game-session:<token>:<session>:<item>".
func Key(token, sessionID, item string) (string, error) {
	for _, part := range []string{token, sessionID, item} {
		if part == "" || strings.Contains(part, ":") {
			return "", ErrInvalidKey
		}
	}

	return strings.Join([]string{KeyPrefix, token, sessionID, item}, ":"), nil
}
