package service

import (
	"context"
	"time"

	"mangopay-sync/internal/core/domain"
	"mangopay-sync/internal/core/ports"
	"mangopay-sync/pkg/apperror"

	"github.com/google/uuid"
)

type bankAccountService struct {
	users    ports.UserRepository
	accounts ports.BankAccountRepository
	sync     *Syncer
}

func NewBankAccountService(users ports.UserRepository, accounts ports.BankAccountRepository, sync *Syncer) ports.BankAccountSyncService {
	return &bankAccountService{users: users, accounts: accounts, sync: sync}
}

// Register stores the account after checking that exactly the fields of
// its shape are present.
func (s *bankAccountService) Register(ctx context.Context, acct *domain.BankAccount) error {
	switch acct.AccountType {
	case domain.BankAccountIBAN, domain.BankAccountUS, domain.BankAccountOther:
	default:
		return apperror.ErrUnsupportedAccountType(string(acct.AccountType))
	}
	if !acct.ShapeComplete() {
		return apperror.Validation("bank account fields do not match account type " + string(acct.AccountType))
	}
	if _, err := loadUser(ctx, s.users, acct.UserID); err != nil {
		return err
	}
	if err := s.accounts.Create(ctx, acct); err != nil {
		return storageFailed("create bank account", err)
	}
	return nil
}

func (s *bankAccountService) Create(ctx context.Context, id uuid.UUID) (*domain.BankAccount, error) {
	var acct *domain.BankAccount
	err := s.sync.withLock(ctx, "bank_account", id, func() error {
		var err error
		acct, err = loadBankAccount(ctx, s.accounts, id)
		if err != nil {
			return err
		}
		if acct.HasRemoteID() {
			return apperror.ErrAlreadyCreated("bank account")
		}
		owner, err := loadUser(ctx, s.users, acct.UserID)
		if err != nil {
			return err
		}

		res, err := BuildBankAccount(acct, owner)
		if err != nil {
			return err
		}
		resp, err := s.sync.client.Create(ctx, res)
		if err != nil {
			return s.sync.remoteFailed("create bank account", id, err)
		}

		acct.RemoteID = &resp.ID
		acct.UpdatedAt = time.Now().UTC()
		return s.sync.confirm("create bank account", id, resp.ID, func() error {
			return s.accounts.Update(ctx, acct)
		})
	})
	if err != nil {
		return nil, err
	}
	return acct, nil
}

func loadBankAccount(ctx context.Context, accounts ports.BankAccountRepository, id uuid.UUID) (*domain.BankAccount, error) {
	acct, err := accounts.GetByID(ctx, id)
	if err != nil {
		return nil, storageFailed("get bank account", err)
	}
	if acct == nil {
		return nil, apperror.ErrNotFound("bank account")
	}
	return acct, nil
}
