package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/winnipegconnect/backend/internal/domain/entities"
	"github.com/winnipegconnect/backend/internal/domain/providers"
	redisclient "github.com/winnipegconnect/backend/internal/infrastructure/clients/redis"
)

// SearchEventsChannel is the Redis Pub/Sub channel search events are published on
const SearchEventsChannel = "search:events"

// RedisAnalyticsSink publishes search events on a Redis Pub/Sub channel
type RedisAnalyticsSink struct {
	client  *redisclient.Client
	channel string
}

var _ providers.AnalyticsSink = (*RedisAnalyticsSink)(nil)

// NewRedisAnalyticsSink creates a sink publishing on SearchEventsChannel
func NewRedisAnalyticsSink(client *redisclient.Client) *RedisAnalyticsSink {
	return &RedisAnalyticsSink{client: client, channel: SearchEventsChannel}
}

// Publish sends one event to every subscriber of the channel
func (s *RedisAnalyticsSink) Publish(ctx context.Context, event *entities.SearchEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal search event: %w", err)
	}
	if err := s.client.Client().Publish(ctx, s.channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish search event: %w", err)
	}
	return nil
}

// Close is a no-op; the Redis client is owned by the caller
func (s *RedisAnalyticsSink) Close() error {
	return nil
}
