package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const eventsChannelPrefix = "session-events:"

// GameEvents fans out "the game of this session changed" notifications across server instances.
type GameEvents interface {
	Publish(ctx context.Context, sessionID string) error
	Subscribe(ctx context.Context, sessionID string) (<-chan struct{}, func(), error)
}

type redisGameEvents struct {
	client *redis.Client
}

func NewGameEvents(client *redis.Client) GameEvents {
	return &redisGameEvents{
		client: client,
	}
}

func (that *redisGameEvents) Publish(ctx context.Context, sessionID string) error {
	if err := that.client.Publish(ctx, eventsChannelPrefix+sessionID, sessionID).Err(); err != nil {
		return fmt.Errorf("failed to publish game event: %w", err)
	}

	return nil
}

// Subscribe returns a channel receiving one value per change and a func closing the subscription.
// The channel is closed when ctx is done or the subscription is closed.
func (that *redisGameEvents) Subscribe(ctx context.Context, sessionID string) (<-chan struct{}, func(), error) {
	pubsub := that.client.Subscribe(ctx, eventsChannelPrefix+sessionID)

	// wait for the confirmation so no event published after Subscribe returns is lost
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, fmt.Errorf("failed to subscribe to game events: %w", err)
	}

	events := make(chan struct{}, 1)
	messages := pubsub.Channel()

	go func() {
		defer close(events)

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-messages:
				if !ok {
					return
				}

				// coalesce: a reader only needs to know that something changed
				select {
				case events <- struct{}{}:
				default:
				}
			}
		}
	}()

	return events, func() { _ = pubsub.Close() }, nil
}
