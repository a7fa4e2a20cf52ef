package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// unlockScript deletes the key only while it still holds our token, so an
// expired lock re-acquired by someone else is never released by us.
var unlockScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RecordLock implements ports.RecordLocker using Redis SET NX.
type RecordLock struct {
	client *goredis.Client
	prefix string
}

// NewRecordLock creates a new Redis-backed record lock.
func NewRecordLock(client *goredis.Client) *RecordLock {
	return &RecordLock{
		client: client,
		prefix: "lock:",
	}
}

// Lock tries to take key for ttl. ok is false if another holder owns it.
func (l *RecordLock) Lock(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	result, err := l.client.SetArgs(ctx, l.prefix+key, token, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis lock: %w", err)
	}
	return token, result == "OK", nil
}

// Unlock releases key if token still owns it.
func (l *RecordLock) Unlock(ctx context.Context, key string, token string) error {
	if err := unlockScript.Run(ctx, l.client, []string{l.prefix + key}, token).Err(); err != nil {
		return fmt.Errorf("redis unlock: %w", err)
	}
	return nil
}
