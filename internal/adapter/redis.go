package adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
)

// ErrRedisNil is returned by RedisClient.Get when the key does not exist
var ErrRedisNil = redis.ErrNil

// RedisClient defines the interface for Redis operations to enable mocking
//
//go:generate mockgen -source=redis.go -destination=../mocks/redis.go -package=mocks -mock_names=RedisClient=MockRedisClient
type RedisClient interface {
	// Ping checks if Redis is reachable
	Ping(ctx context.Context) error

	// Get returns the string value of a key, or ErrRedisNil when it is absent
	Get(ctx context.Context, key string) (string, error)

	// SetEX sets a key with an expiry; a zero ttl stores the key without expiry
	SetEX(ctx context.Context, key, value string, ttl time.Duration) error

	// Del removes a key
	Del(ctx context.Context, key string) error

	// Close closes every pooled connection
	Close() error
}

// RedisOptions configures the connection pool
type RedisOptions struct {
	Address     string
	Password    string
	DB          int
	MaxIdle     int
	IdleTimeout time.Duration
}

// RealRedisClient wraps a redigo connection pool
type RealRedisClient struct {
	pool *redis.Pool
}

// NewRedisClient creates a new Redis client backed by a redigo pool
func NewRedisClient(opts RedisOptions) RedisClient {
	maxIdle := opts.MaxIdle
	if maxIdle <= 0 {
		maxIdle = 3
	}
	idleTimeout := opts.IdleTimeout
	if idleTimeout <= 0 {
		idleTimeout = 240 * time.Second
	}

	return &RealRedisClient{
		pool: &redis.Pool{
			MaxIdle:     maxIdle,
			IdleTimeout: idleTimeout,
			Dial: func() (redis.Conn, error) {
				return redis.Dial("tcp", opts.Address,
					redis.DialPassword(opts.Password),
					redis.DialDatabase(opts.DB),
				)
			},
			TestOnBorrow: func(c redis.Conn, t time.Time) error {
				if time.Since(t) < time.Minute {
					return nil
				}
				_, err := c.Do("PING")
				return err
			},
		},
	}
}

func (r *RealRedisClient) do(ctx context.Context, cmd string, args ...interface{}) (interface{}, error) {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get redis connection: %w", err)
	}
	defer func() { _ = conn.Close() }()

	return conn.Do(cmd, args...)
}

// Ping checks if Redis is reachable
func (r *RealRedisClient) Ping(ctx context.Context) error {
	_, err := r.do(ctx, "PING")
	return err
}

// Get returns the string value of a key
func (r *RealRedisClient) Get(ctx context.Context, key string) (string, error) {
	value, err := redis.String(r.do(ctx, "GET", key))
	if errors.Is(err, redis.ErrNil) {
		return "", ErrRedisNil
	}
	return value, err
}

// SetEX sets a key with an expiry
func (r *RealRedisClient) SetEX(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		_, err := r.do(ctx, "SET", key, value)
		return err
	}
	_, err := r.do(ctx, "SET", key, value, "PX", ttl.Milliseconds())
	return err
}

// Del removes a key
func (r *RealRedisClient) Del(ctx context.Context, key string) error {
	_, err := r.do(ctx, "DEL", key)
	return err
}

// Close closes every pooled connection
func (r *RealRedisClient) Close() error {
	return r.pool.Close()
}
