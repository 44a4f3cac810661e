package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-sessions/internal/apperror"
)

var ErrKeyNotFound = fmt.Errorf("key %w", apperror.ErrNotFound)

// KeyValueRepository keeps short string values per caller, such as the player id behind a cookie token.
type KeyValueRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type dbKeyValue struct {
	client *redis.Client
	ttl    time.Duration
}

// NewKeyValueRepository stores values for ttl; zero keeps them forever.
func NewKeyValueRepository(client *redis.Client, ttl time.Duration) KeyValueRepository {
	return &dbKeyValue{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbKeyValue) Get(ctx context.Context, key string) (string, error) {
	value, err := that.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}

	if err != nil {
		return "", fmt.Errorf("failed to get value: %w", err)
	}

	return value, nil
}

func (that *dbKeyValue) Set(ctx context.Context, key, value string) error {
	if err := that.client.Set(ctx, key, value, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	return nil
}
