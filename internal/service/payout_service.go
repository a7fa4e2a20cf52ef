package service

import (
	"context"
	"time"

	"mangopay-sync/internal/core/domain"
	"mangopay-sync/internal/core/ports"
	"mangopay-sync/pkg/apperror"

	"github.com/google/uuid"
)

type payOutService struct {
	users    ports.UserRepository
	wallets  ports.WalletRepository
	accounts ports.BankAccountRepository
	payOuts  ports.PayOutRepository
	sync     *Syncer
}

func NewPayOutService(
	users ports.UserRepository,
	wallets ports.WalletRepository,
	accounts ports.BankAccountRepository,
	payOuts ports.PayOutRepository,
	sync *Syncer,
) ports.PayOutSyncService {
	return &payOutService{
		users:    users,
		wallets:  wallets,
		accounts: accounts,
		payOuts:  payOuts,
		sync:     sync,
	}
}

func (s *payOutService) Register(ctx context.Context, p *domain.PayOut) error {
	if err := validateFunds(p.DebitedFunds, p.Fees); err != nil {
		return err
	}
	if _, err := loadUser(ctx, s.users, p.UserID); err != nil {
		return err
	}
	if _, err := loadWallet(ctx, s.wallets, p.WalletID); err != nil {
		return err
	}
	acct, err := loadBankAccount(ctx, s.accounts, p.BankAccountID)
	if err != nil {
		return err
	}
	if acct.UserID != p.UserID {
		return apperror.Validation("bank account belongs to another user")
	}
	if err := s.payOuts.Create(ctx, p); err != nil {
		return storageFailed("create pay-out", err)
	}
	return nil
}

func (s *payOutService) Create(ctx context.Context, id uuid.UUID) (*domain.PayOut, error) {
	var p *domain.PayOut
	err := s.sync.withLock(ctx, "payout", id, func() error {
		var err error
		p, err = s.load(ctx, id)
		if err != nil {
			return err
		}
		if p.HasRemoteID() {
			return apperror.ErrAlreadyCreated("pay-out")
		}
		author, err := loadUser(ctx, s.users, p.UserID)
		if err != nil {
			return err
		}
		wallet, err := loadWallet(ctx, s.wallets, p.WalletID)
		if err != nil {
			return err
		}
		acct, err := loadBankAccount(ctx, s.accounts, p.BankAccountID)
		if err != nil {
			return err
		}

		res, err := BuildPayOut(p, author, wallet, acct)
		if err != nil {
			return err
		}
		resp, err := s.sync.client.Create(ctx, res)
		if err != nil {
			return s.sync.remoteFailed("create pay-out", id, err)
		}

		p.RemoteID = &resp.ID
		p.Outcome = s.sync.outcome(resp)
		p.UpdatedAt = time.Now().UTC()
		return s.sync.confirm("create pay-out", id, resp.ID, func() error {
			return s.payOuts.Update(ctx, p)
		})
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *payOutService) load(ctx context.Context, id uuid.UUID) (*domain.PayOut, error) {
	p, err := s.payOuts.GetByID(ctx, id)
	if err != nil {
		return nil, storageFailed("get pay-out", err)
	}
	if p == nil {
		return nil, apperror.ErrNotFound("pay-out")
	}
	return p, nil
}
