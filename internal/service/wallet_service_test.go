package service

import (
	"context"
	"testing"

	"mangopay-sync/internal/core/domain"
	"mangopay-sync/internal/core/resource"
	"mangopay-sync/pkg/apperror"
	"mangopay-sync/pkg/money"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletService_Create(t *testing.T) {
	d := setupSync(t)
	svc := NewWalletService(d.users, d.wallets, d.sync)
	ctx := context.Background()

	owner := naturalUser(ptr("u-1"))
	wallet := &domain.Wallet{ID: uuid.New(), UserID: owner.ID, Currency: "EUR", Description: ptr("main")}

	d.expectLock("wallet", wallet.ID)
	d.wallets.EXPECT().GetByID(ctx, wallet.ID).Return(wallet, nil)
	d.users.EXPECT().GetByID(ctx, owner.ID).Return(owner, nil)
	d.client.EXPECT().Create(ctx, resource.Wallet{Owners: []string{"u-1"}, Description: "main", Currency: "EUR"}).
		Return(&resource.Response{ID: "w-1"}, nil)
	d.wallets.EXPECT().Update(ctx, wallet).Return(nil)

	got, err := svc.Create(ctx, wallet.ID)
	require.NoError(t, err)
	assert.Equal(t, "w-1", *got.RemoteID)
}

func TestWalletService_Balance(t *testing.T) {
	d := setupSync(t)
	svc := NewWalletService(d.users, d.wallets, d.sync)
	ctx := context.Background()

	wallet := &domain.Wallet{ID: uuid.New(), RemoteID: ptr("w-1"), Currency: "EUR"}
	d.wallets.EXPECT().GetByID(ctx, wallet.ID).Return(wallet, nil).Times(2)
	d.client.EXPECT().Fetch(ctx, resource.KindWallet, "w-1").
		Return(&resource.Response{ID: "w-1", Balance: &money.Minor{Amount: 12345, Currency: "EUR"}}, nil)

	balance, err := svc.Balance(ctx, wallet.ID)
	require.NoError(t, err)
	require.NotNil(t, balance)
	assert.Equal(t, "123.45 EUR", balance.String())

	d.client.EXPECT().Fetch(ctx, resource.KindWallet, "w-1").Return(&resource.Response{ID: "w-1"}, nil)
	balance, err = svc.Balance(ctx, wallet.ID)
	require.NoError(t, err)
	assert.Nil(t, balance)
}

func TestWalletService_Balance_NotCreated(t *testing.T) {
	d := setupSync(t)
	svc := NewWalletService(d.users, d.wallets, d.sync)
	ctx := context.Background()

	wallet := &domain.Wallet{ID: uuid.New()}
	d.wallets.EXPECT().GetByID(ctx, wallet.ID).Return(wallet, nil)

	_, err := svc.Balance(ctx, wallet.ID)
	assert.True(t, apperror.HasCode(err, apperror.CodeMissingRemoteID))
}

func TestWalletService_Register(t *testing.T) {
	d := setupSync(t)
	svc := NewWalletService(d.users, d.wallets, d.sync)
	ctx := context.Background()

	owner := naturalUser(nil)
	wallet := &domain.Wallet{ID: uuid.New(), UserID: owner.ID}
	d.users.EXPECT().GetByID(ctx, owner.ID).Return(owner, nil)
	d.wallets.EXPECT().Create(ctx, wallet).Return(nil)

	require.NoError(t, svc.Register(ctx, wallet))
	assert.Equal(t, "EUR", wallet.Currency)

	err := svc.Register(ctx, &domain.Wallet{UserID: owner.ID, Currency: "EURO"})
	assert.True(t, apperror.HasCode(err, apperror.CodeValidation))
}
