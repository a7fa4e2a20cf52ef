// Package redis holds the Redis-backed pieces of the sync layer: the
// processor OAuth token cache, per-record sync locks and ops API rate
// limit counters.
package redis

import (
	"context"
	"fmt"

	"mangopay-sync/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// NewClient connects to Redis and fails fast when the server does not
// answer PING. Sync locks depend on it, so starting without Redis would
// let concurrent creates through.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr(), err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Msg("Redis ready for token cache and sync locks")

	return client, nil
}
