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

func TestRecordLock_LockIsExclusive(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	lock := NewRecordLock(client)
	ctx := context.Background()

	token, ok, err := lock.Lock(ctx, "sync:wallet:1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotEmpty(t, token)

	_, ok, err = lock.Lock(ctx, "sync:wallet:1", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "second holder must be refused")

	_, ok, err = lock.Lock(ctx, "sync:wallet:2", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "other records are independent")
}

func TestRecordLock_UnlockReleases(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	lock := NewRecordLock(client)
	ctx := context.Background()

	token, ok, err := lock.Lock(ctx, "sync:user:1", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, lock.Unlock(ctx, "sync:user:1", token))
	assert.False(t, s.Exists("lock:sync:user:1"))

	_, ok, err = lock.Lock(ctx, "sync:user:1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRecordLock_UnlockWithStaleTokenKeepsNewHolder(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	lock := NewRecordLock(client)
	ctx := context.Background()

	stale, ok, err := lock.Lock(ctx, "sync:payin:1", time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	s.FastForward(2 * time.Second)

	fresh, ok, err := lock.Lock(ctx, "sync:payin:1", time.Minute)
	require.NoError(t, err)
	require.True(t, ok, "expired lock can be re-acquired")

	require.NoError(t, lock.Unlock(ctx, "sync:payin:1", stale))

	held, err := s.Get("lock:sync:payin:1")
	require.NoError(t, err)
	assert.Equal(t, fresh, held)
}

func TestRecordLock_TTL(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	lock := NewRecordLock(client)

	_, ok, err := lock.Lock(context.Background(), "sync:card:1", 2*time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2*time.Minute, s.TTL("lock:sync:card:1"))
}
