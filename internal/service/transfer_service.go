package service

import (
	"context"
	"time"

	"mangopay-sync/internal/core/domain"
	"mangopay-sync/internal/core/ports"
	"mangopay-sync/pkg/apperror"

	"github.com/google/uuid"
)

type transferService struct {
	users     ports.UserRepository
	wallets   ports.WalletRepository
	transfers ports.TransferRepository
	sync      *Syncer
}

func NewTransferService(
	users ports.UserRepository,
	wallets ports.WalletRepository,
	transfers ports.TransferRepository,
	sync *Syncer,
) ports.TransferSyncService {
	return &transferService{
		users:     users,
		wallets:   wallets,
		transfers: transfers,
		sync:      sync,
	}
}

func (s *transferService) Register(ctx context.Context, t *domain.Transfer) error {
	if t.DebitedWalletID == t.CreditedWalletID {
		return apperror.Validation("debited and credited wallets must differ")
	}
	if err := validateFunds(t.DebitedFunds, t.Fees); err != nil {
		return err
	}
	if _, err := loadWallet(ctx, s.wallets, t.DebitedWalletID); err != nil {
		return err
	}
	if _, err := loadWallet(ctx, s.wallets, t.CreditedWalletID); err != nil {
		return err
	}
	if err := s.transfers.Create(ctx, t); err != nil {
		return storageFailed("create transfer", err)
	}
	return nil
}

// Create submits the transfer. The debited wallet's owner is the author.
func (s *transferService) Create(ctx context.Context, id uuid.UUID) (*domain.Transfer, error) {
	var t *domain.Transfer
	err := s.sync.withLock(ctx, "transfer", id, func() error {
		var err error
		t, err = s.load(ctx, id)
		if err != nil {
			return err
		}
		if t.HasRemoteID() {
			return apperror.ErrAlreadyCreated("transfer")
		}
		parties, err := s.parties(ctx, t)
		if err != nil {
			return err
		}

		res, err := BuildTransfer(t, parties)
		if err != nil {
			return err
		}
		resp, err := s.sync.client.Create(ctx, res)
		if err != nil {
			return s.sync.remoteFailed("create transfer", id, err)
		}

		t.RemoteID = &resp.ID
		t.Outcome = s.sync.outcome(resp)
		t.UpdatedAt = time.Now().UTC()
		return s.sync.confirm("create transfer", id, resp.ID, func() error {
			return s.transfers.Update(ctx, t)
		})
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *transferService) parties(ctx context.Context, t *domain.Transfer) (TransferParties, error) {
	var p TransferParties
	var err error
	if p.DebitedWallet, err = loadWallet(ctx, s.wallets, t.DebitedWalletID); err != nil {
		return p, err
	}
	if p.DebitedOwner, err = loadUser(ctx, s.users, p.DebitedWallet.UserID); err != nil {
		return p, err
	}
	if p.CreditedWallet, err = loadWallet(ctx, s.wallets, t.CreditedWalletID); err != nil {
		return p, err
	}
	if p.CreditedOwner, err = loadUser(ctx, s.users, p.CreditedWallet.UserID); err != nil {
		return p, err
	}
	return p, nil
}

func (s *transferService) load(ctx context.Context, id uuid.UUID) (*domain.Transfer, error) {
	t, err := s.transfers.GetByID(ctx, id)
	if err != nil {
		return nil, storageFailed("get transfer", err)
	}
	if t == nil {
		return nil, apperror.ErrNotFound("transfer")
	}
	return t, nil
}
