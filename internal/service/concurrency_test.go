package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	redisStorage "mangopay-sync/internal/adapter/storage/redis"
	"mangopay-sync/internal/core/domain"
	"mangopay-sync/internal/core/resource"
	"mangopay-sync/pkg/apperror"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// TestConcurrentWalletCreate fires many create calls at one wallet through
// a real redis record lock. Exactly one caller may reach the processor;
// the rest are rejected as locked or already created.
func TestConcurrentWalletCreate(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	d := setupSync(t)
	d.sync = NewSyncer(d.client, redisStorage.NewRecordLock(rdb), time.Minute, time.UTC, zerolog.Nop())
	svc := NewWalletService(d.users, d.wallets, d.sync)

	ownerRemote := "u_1"
	owner := &domain.User{ID: uuid.New(), RemoteID: &ownerRemote}

	var mu sync.Mutex
	stored := domain.Wallet{ID: uuid.New(), UserID: owner.ID, Currency: "EUR"}

	d.wallets.EXPECT().GetByID(gomock.Any(), stored.ID).DoAndReturn(
		func(context.Context, uuid.UUID) (*domain.Wallet, error) {
			mu.Lock()
			defer mu.Unlock()
			w := stored
			return &w, nil
		}).AnyTimes()
	d.wallets.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, w *domain.Wallet) error {
			mu.Lock()
			defer mu.Unlock()
			stored = *w
			return nil
		}).AnyTimes()
	d.users.EXPECT().GetByID(gomock.Any(), owner.ID).Return(owner, nil).AnyTimes()

	var remoteCalls atomic.Int32
	d.client.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, resource.Resource) (*resource.Response, error) {
			remoteCalls.Add(1)
			time.Sleep(20 * time.Millisecond)
			return &resource.Response{ID: "w_1"}, nil
		}).AnyTimes()

	const callers = 25
	var (
		wg                sync.WaitGroup
		created, rejected atomic.Int32
		unexpected        = make(chan error, callers)
	)
	start := make(chan struct{})

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := svc.Create(context.Background(), stored.ID)
			if err == nil {
				created.Add(1)
				return
			}
			var appErr *apperror.AppError
			if errors.As(err, &appErr) && (appErr.Code == apperror.CodeRecordLocked || appErr.Code == apperror.CodePrecondition) {
				rejected.Add(1)
				return
			}
			unexpected <- err
		}()
	}
	close(start)
	wg.Wait()
	close(unexpected)

	for err := range unexpected {
		t.Errorf("unexpected error: %v", err)
	}
	assert.Equal(t, int32(1), created.Load())
	assert.Equal(t, int32(callers-1), rejected.Load())
	assert.Equal(t, int32(1), remoteCalls.Load())

	mu.Lock()
	defer mu.Unlock()
	require.NotNil(t, stored.RemoteID)
	assert.Equal(t, "w_1", *stored.RemoteID)

	// Every caller released its lock.
	assert.False(t, mr.Exists("lock:"+LockKey("wallet", stored.ID)))
}
