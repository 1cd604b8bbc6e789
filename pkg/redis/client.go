package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a key does not exist.
var ErrNotFound = errors.New("redis: key not found")

type Client struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a new Redis client. It does not dial; see Connect.
func New(addr, password string, db int, ttl time.Duration) *Client {
	return &Client{
		client: redis.NewClient(&redis.Options{
			Addr:         addr,
			Password:     password,
			DB:           db,
			PoolSize:     20,
			MinIdleConns: 2,
		}),
		ttl: ttl,
	}
}

// Connect creates a client and pings it until it answers or maxElapsed
// passes.
func Connect(ctx context.Context, addr, password string, db int, ttl, maxElapsed time.Duration, logger *zap.Logger) (*Client, error) {
	const operation = "redis.Connect"

	c := New(addr, password, db, ttl)

	retryPolicy := backoff.NewExponentialBackOff()
	retryPolicy.MaxElapsedTime = maxElapsed
	retryPolicy.MaxInterval = 5 * time.Second

	logger.Info("Connecting to Redis...", zap.String("addr", addr))

	err := backoff.RetryNotify(
		func() error {
			return c.client.Ping(ctx).Err()
		},
		backoff.WithContext(retryPolicy, ctx),
		func(err error, d time.Duration) {
			logger.Warn("Redis ping failed, retrying...",
				zap.Error(err),
				zap.Duration("next_attempt_in", d))
		},
	)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("%s: failed to connect after retries: %w", operation, err)
	}

	logger.Info("Successfully connected to Redis")
	return c, nil
}

// Expire sets a key's time to live
func (c *Client) Expire(ctx context.Context, key string, expiration time.Duration) (bool, error) {
	return c.client.Expire(ctx, key, expiration).Result()
}

// Incr increments the key's value by 1 and returns the new value
func (c *Client) Incr(ctx context.Context, key string) (int64, error) {
	return c.client.Incr(ctx, key).Result()
}

func (c *Client) Del(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	return data, err
}

func (c *Client) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *Client) Close() {
	if c.client != nil {
		_ = c.client.Close()
	}
}

// SaveState stores the chat's state as JSON for the client TTL
func (c *Client) SaveState(ctx context.Context, chatID int64, state any) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	return c.client.Set(ctx, stateKey(chatID), data, c.ttl).Err()
}

// GetState loads the chat's state into state. ErrNotFound when none is saved.
func (c *Client) GetState(ctx context.Context, chatID int64, state any) error {
	data, err := c.Get(ctx, stateKey(chatID))
	if err != nil {
		return fmt.Errorf("get state: %w", err)
	}

	return json.Unmarshal(data, state)
}

// ClearState removes the chat's state
func (c *Client) ClearState(ctx context.Context, chatID int64) error {
	return c.client.Del(ctx, stateKey(chatID)).Err()
}

func stateKey(chatID int64) string {
	return fmt.Sprintf("state:%d", chatID)
}
