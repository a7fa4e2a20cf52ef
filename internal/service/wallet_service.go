package service

import (
	"context"
	"time"

	"mangopay-sync/internal/core/domain"
	"mangopay-sync/internal/core/ports"
	"mangopay-sync/internal/core/resource"
	"mangopay-sync/pkg/apperror"
	"mangopay-sync/pkg/money"

	"github.com/google/uuid"
)

type walletService struct {
	users   ports.UserRepository
	wallets ports.WalletRepository
	sync    *Syncer
}

func NewWalletService(users ports.UserRepository, wallets ports.WalletRepository, sync *Syncer) ports.WalletSyncService {
	return &walletService{users: users, wallets: wallets, sync: sync}
}

func (s *walletService) Register(ctx context.Context, wallet *domain.Wallet) error {
	if wallet.Currency == "" {
		wallet.Currency = money.DefaultCurrency
	}
	if len(wallet.Currency) != 3 {
		return apperror.Validation("currency must be an ISO 4217 code")
	}
	if _, err := loadUser(ctx, s.users, wallet.UserID); err != nil {
		return err
	}
	if err := s.wallets.Create(ctx, wallet); err != nil {
		return storageFailed("create wallet", err)
	}
	return nil
}

func (s *walletService) Create(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	var wallet *domain.Wallet
	err := s.sync.withLock(ctx, "wallet", id, func() error {
		var err error
		wallet, err = loadWallet(ctx, s.wallets, id)
		if err != nil {
			return err
		}
		if wallet.HasRemoteID() {
			return apperror.ErrAlreadyCreated("wallet")
		}
		owner, err := loadUser(ctx, s.users, wallet.UserID)
		if err != nil {
			return err
		}

		res, err := BuildWallet(wallet, owner)
		if err != nil {
			return err
		}
		resp, err := s.sync.client.Create(ctx, res)
		if err != nil {
			return s.sync.remoteFailed("create wallet", id, err)
		}

		wallet.RemoteID = &resp.ID
		wallet.UpdatedAt = time.Now().UTC()
		return s.sync.confirm("create wallet", id, resp.ID, func() error {
			return s.wallets.Update(ctx, wallet)
		})
	})
	if err != nil {
		return nil, err
	}
	return wallet, nil
}

// Balance reads the live balance. It is never stored.
func (s *walletService) Balance(ctx context.Context, id uuid.UUID) (*money.Amount, error) {
	wallet, err := loadWallet(ctx, s.wallets, id)
	if err != nil {
		return nil, err
	}
	remote, err := remoteID("wallet", wallet.RemoteID)
	if err != nil {
		return nil, err
	}

	resp, err := s.sync.client.Fetch(ctx, resource.KindWallet, remote)
	if err != nil {
		return nil, s.sync.remoteFailed("get wallet balance", id, err)
	}
	if resp.Balance == nil {
		return nil, nil
	}
	balance := money.FromMinorUnits(*resp.Balance)
	return &balance, nil
}

func loadWallet(ctx context.Context, wallets ports.WalletRepository, id uuid.UUID) (*domain.Wallet, error) {
	wallet, err := wallets.GetByID(ctx, id)
	if err != nil {
		return nil, storageFailed("get wallet", err)
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	return wallet, nil
}
