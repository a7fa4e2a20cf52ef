package redis

import (
	"bytes"
	"context"
	"strconv"
	"testing"

	"mangopay-sync/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func redisConfig(t *testing.T, s *miniredis.Miniredis) config.RedisConfig {
	t.Helper()
	port, err := strconv.Atoi(s.Port())
	require.NoError(t, err)
	return config.RedisConfig{Host: s.Host(), Port: port}
}

func TestNewClient_Connects(t *testing.T) {
	s := miniredis.RunT(t)
	var buf bytes.Buffer

	client, err := NewClient(context.Background(), redisConfig(t, s), zerolog.New(&buf))
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Set(context.Background(), "mangopay:token", "tok", 0).Err())
	got, err := s.Get("mangopay:token")
	require.NoError(t, err)
	assert.Equal(t, "tok", got)
	assert.Contains(t, buf.String(), "token cache and sync locks")
}

func TestNewClient_SelectsDB(t *testing.T) {
	s := miniredis.RunT(t)
	cfg := redisConfig(t, s)
	cfg.DB = 2

	client, err := NewClient(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Set(context.Background(), "sync:wallet:1", "x", 0).Err())
	assert.True(t, s.DB(2).Exists("sync:wallet:1"))
	assert.False(t, s.DB(0).Exists("sync:wallet:1"))
}

func TestNewClient_Password(t *testing.T) {
	s := miniredis.RunT(t)
	s.RequireAuth("s3cret")
	cfg := redisConfig(t, s)

	cfg.Password = "wrong"
	_, err := NewClient(context.Background(), cfg, zerolog.Nop())
	require.Error(t, err)

	cfg.Password = "s3cret"
	client, err := NewClient(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	client.Close()
}

func TestNewClient_Unreachable(t *testing.T) {
	s := miniredis.RunT(t)
	cfg := redisConfig(t, s)
	s.Close()

	client, err := NewClient(context.Background(), cfg, zerolog.Nop())
	require.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "redis ping "+cfg.Addr())
}
