// Package app wires storage, the processor client and the sync services
// from configuration. Both the API server and the CLI build on it.
package app

import (
	"context"
	"fmt"

	"mangopay-sync/config"
	"mangopay-sync/internal/adapter/blob"
	"mangopay-sync/internal/adapter/mangopay"
	pgStorage "mangopay-sync/internal/adapter/storage/postgres"
	redisStorage "mangopay-sync/internal/adapter/storage/redis"
	"mangopay-sync/internal/core/ports"
	"mangopay-sync/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// App holds every wired service. Call Close when done.
type App struct {
	Users        ports.UserSyncService
	Documents    ports.DocumentSyncService
	BankAccounts ports.BankAccountSyncService
	Wallets      ports.WalletSyncService
	PayIns       ports.PayInSyncService
	PayOuts      ports.PayOutSyncService
	Transfers    ports.TransferSyncService
	Refunds      ports.RefundSyncService
	Cards        ports.CardSyncService

	Tokens    ports.TokenService
	Audit     ports.AuditService
	Remote    *mangopay.Client
	RateLimit *redisStorage.RateLimitStore
	Health    []ports.HealthChecker

	pool *pgxpool.Pool
	rdb  *goredis.Client
}

// Build connects to PostgreSQL and Redis and wires the services. reg may
// be nil when processor metrics are not exported.
func Build(ctx context.Context, cfg *config.Config, reg prometheus.Registerer, log zerolog.Logger) (*App, error) {
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	cipher, err := service.NewAESFieldCipher(cfg.AES.Key)
	if err != nil {
		pool.Close()
		_ = rdb.Close()
		return nil, fmt.Errorf("init field cipher: %w", err)
	}

	// Repositories
	userRepo := pgStorage.NewUserRepo(pool)
	docRepo := pgStorage.NewDocumentRepo(pool)
	pageRepo := pgStorage.NewPageRepo(pool)
	bankRepo := pgStorage.NewBankAccountRepo(pool, cipher)
	walletRepo := pgStorage.NewWalletRepo(pool)
	payInRepo := pgStorage.NewPayInRepo(pool)
	payOutRepo := pgStorage.NewPayOutRepo(pool)
	transferRepo := pgStorage.NewTransferRepo(pool)
	refundRepo := pgStorage.NewRefundRepo(pool)
	cardRepo := pgStorage.NewCardRepo(pool)
	regRepo := pgStorage.NewCardRegistrationRepo(pool)
	auditRepo := pgStorage.NewAuditRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Processor boundary
	var metrics *mangopay.Metrics
	if reg != nil {
		metrics = mangopay.NewMetrics(reg)
	}
	remote := mangopay.NewClient(cfg.Mangopay, redisStorage.NewTokenCache(rdb), metrics, log)
	locker := redisStorage.NewRecordLock(rdb)
	syncer := service.NewSyncer(remote, locker, cfg.Sync.LockTTL, cfg.Sync.Location(), log)
	fetcher := blob.NewFetcher(cfg.Blob)

	return &App{
		Users:        service.NewUserService(userRepo, docRepo, syncer),
		Documents:    service.NewDocumentService(userRepo, docRepo, pageRepo, fetcher, syncer),
		BankAccounts: service.NewBankAccountService(userRepo, bankRepo, syncer),
		Wallets:      service.NewWalletService(userRepo, walletRepo, syncer),
		PayIns:       service.NewPayInService(userRepo, walletRepo, cardRepo, payInRepo, syncer),
		PayOuts:      service.NewPayOutService(userRepo, walletRepo, bankRepo, payOutRepo, syncer),
		Transfers:    service.NewTransferService(userRepo, walletRepo, transferRepo, syncer),
		Refunds:      service.NewRefundService(userRepo, payInRepo, refundRepo, syncer),
		Cards:        service.NewCardService(userRepo, cardRepo, regRepo, transactor, syncer),

		Tokens:    service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer),
		Audit:     service.NewAuditService(auditRepo, log),
		Remote:    remote,
		RateLimit: redisStorage.NewRateLimitStore(rdb),
		Health: []ports.HealthChecker{
			pgStorage.NewHealthCheck(pool),
			redisStorage.NewHealthCheck(rdb),
			remote,
		},

		pool: pool,
		rdb:  rdb,
	}, nil
}

// Close releases the database pool and the Redis client.
func (a *App) Close() {
	if a.rdb != nil {
		_ = a.rdb.Close()
	}
	if a.pool != nil {
		a.pool.Close()
	}
}
