package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCache_GetMissing(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewTokenCache(client)

	token, err := cache.Get(context.Background(), "mangopay:oauth:acme")
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestTokenCache_SetAndExpire(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewTokenCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "mangopay:oauth:acme", "tok-1", 19*time.Minute))

	token, err := cache.Get(ctx, "mangopay:oauth:acme")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, 19*time.Minute, s.TTL("token:mangopay:oauth:acme"))

	s.FastForward(20 * time.Minute)

	token, err = cache.Get(ctx, "mangopay:oauth:acme")
	require.NoError(t, err)
	assert.Empty(t, token, "expired token must not be served")
}

func TestTokenCache_ConnectionError(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr(), MaxRetries: -1})
	cache := NewTokenCache(client)
	s.Close()

	_, err := cache.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.Error(t, cache.Set(context.Background(), "k", "v", time.Minute))
}
