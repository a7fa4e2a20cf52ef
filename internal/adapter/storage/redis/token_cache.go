package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// TokenCache implements ports.TokenCache using Redis.
type TokenCache struct {
	client *goredis.Client
	prefix string
}

// NewTokenCache creates a new Redis-backed processor token cache.
func NewTokenCache(client *goredis.Client) *TokenCache {
	return &TokenCache{
		client: client,
		prefix: "token:",
	}
}

// Get retrieves a cached token. Returns "", nil if the key does not exist.
func (c *TokenCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis token get: %w", err)
	}
	return val, nil
}

// Set stores a token until shortly before it expires on the processor.
func (c *TokenCache) Set(ctx context.Context, key string, token string, ttl time.Duration) error {
	err := c.client.Set(ctx, c.prefix+key, token, ttl).Err()
	if err != nil {
		return fmt.Errorf("redis token set: %w", err)
	}
	return nil
}
