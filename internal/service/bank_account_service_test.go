package service

import (
	"context"
	"testing"

	"mangopay-sync/internal/core/domain"
	"mangopay-sync/internal/core/resource"
	"mangopay-sync/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBankAccountService_Create(t *testing.T) {
	d := setupSync(t)
	svc := NewBankAccountService(d.users, d.accounts, d.sync)
	ctx := context.Background()

	owner := naturalUser(ptr("u-1"))
	acct := &domain.BankAccount{
		ID:          uuid.New(),
		UserID:      owner.ID,
		Address:     "1 rue de Rivoli",
		AccountType: domain.BankAccountIBAN,
		IBAN:        ptr("FR7630004000031234567890143"),
	}

	d.expectLock("bank_account", acct.ID)
	d.accounts.EXPECT().GetByID(ctx, acct.ID).Return(acct, nil)
	d.users.EXPECT().GetByID(ctx, owner.ID).Return(owner, nil)
	d.client.EXPECT().Create(ctx, gomock.AssignableToTypeOf(resource.BankAccount{})).
		Return(&resource.Response{ID: "b-1"}, nil)
	d.accounts.EXPECT().Update(ctx, acct).Return(nil)

	got, err := svc.Create(ctx, acct.ID)
	require.NoError(t, err)
	assert.Equal(t, "b-1", *got.RemoteID)
}

func TestBankAccountService_Create_UnsupportedType(t *testing.T) {
	d := setupSync(t)
	svc := NewBankAccountService(d.users, d.accounts, d.sync)
	ctx := context.Background()

	owner := naturalUser(ptr("u-1"))
	acct := &domain.BankAccount{ID: uuid.New(), UserID: owner.ID, AccountType: "GB", AccountNumber: ptr("1")}

	d.expectLock("bank_account", acct.ID)
	d.accounts.EXPECT().GetByID(ctx, acct.ID).Return(acct, nil)
	d.users.EXPECT().GetByID(ctx, owner.ID).Return(owner, nil)

	_, err := svc.Create(ctx, acct.ID)
	assert.True(t, apperror.HasCode(err, apperror.CodeUnsupportedAccountType))
	assert.Nil(t, acct.RemoteID)
}

func TestBankAccountService_Register(t *testing.T) {
	d := setupSync(t)
	svc := NewBankAccountService(d.users, d.accounts, d.sync)
	ctx := context.Background()

	owner := naturalUser(nil)
	ok := &domain.BankAccount{ID: uuid.New(), UserID: owner.ID, AccountType: domain.BankAccountOther, AccountNumber: ptr("11696419")}
	d.users.EXPECT().GetByID(ctx, owner.ID).Return(owner, nil)
	d.accounts.EXPECT().Create(ctx, ok).Return(nil)
	require.NoError(t, svc.Register(ctx, ok))

	incomplete := &domain.BankAccount{UserID: owner.ID, AccountType: domain.BankAccountUS, AccountNumber: ptr("1")}
	assert.True(t, apperror.HasCode(svc.Register(ctx, incomplete), apperror.CodeValidation))

	unknown := &domain.BankAccount{UserID: owner.ID, AccountType: "CA"}
	assert.True(t, apperror.HasCode(svc.Register(ctx, unknown), apperror.CodeUnsupportedAccountType))
}
