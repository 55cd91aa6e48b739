// Package sessioncache mirrors the active game session outside the process.
package sessioncache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cedrichille/monopoly-companion-app/internal/adapter"
)

// DefaultKey is the cache key of the active game session
const DefaultKey = "monopoly:game_session"

// Cache stores the serialized session
//
//go:generate mockgen -source=cache.go -destination=../mocks/session_cache.go -package=mocks -mock_names=Cache=MockSessionCache
type Cache interface {
	// Get returns the cached session, or ok=false when nothing is cached
	Get(ctx context.Context) (value string, ok bool, err error)
	// Set caches the session
	Set(ctx context.Context, value string) error
	// Delete drops the cached session
	Delete(ctx context.Context) error
}

// Redis is a Cache backed by a Redis key with a sliding ttl
type Redis struct {
	client adapter.RedisClient
	key    string
	ttl    time.Duration
}

// NewRedis creates a Redis cache; ttl of 0 keeps the key without expiry
func NewRedis(client adapter.RedisClient, key string, ttl time.Duration) *Redis {
	if key == "" {
		key = DefaultKey
	}
	return &Redis{client: client, key: key, ttl: ttl}
}

func (r *Redis) Get(ctx context.Context) (string, bool, error) {
	value, err := r.client.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, adapter.ErrRedisNil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get cached session: %w", err)
	}
	return value, true, nil
}

func (r *Redis) Set(ctx context.Context, value string) error {
	if err := r.client.SetEX(ctx, r.key, value, r.ttl); err != nil {
		return fmt.Errorf("failed to cache session: %w", err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key); err != nil {
		return fmt.Errorf("failed to delete cached session: %w", err)
	}
	return nil
}

// Noop is used when no Redis address is configured
type Noop struct{}

func (Noop) Get(context.Context) (string, bool, error) { return "", false, nil }
func (Noop) Set(context.Context, string) error         { return nil }
func (Noop) Delete(context.Context) error              { return nil }
