package postgres

import (
	"context"
	"testing"
	"time"

	"mangopay-sync/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWallet(userID uuid.UUID) *domain.Wallet {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Wallet{
		ID:          uuid.New(),
		UserID:      userID,
		Currency:    "EUR",
		Description: strPtr("main wallet"),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func walletColumns() []string {
	return []string{"id", "remote_id", "user_id", "currency", "description", "created_at", "updated_at"}
}

func TestWalletRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet(uuid.New())

	mock.ExpectExec("INSERT INTO mangopay_wallets").
		WithArgs(w.ID, w.RemoteID, w.UserID, w.Currency, w.Description, w.CreatedAt, w.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), w)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet(uuid.New())
	w.RemoteID = strPtr("w_1")

	mock.ExpectQuery("SELECT .+ FROM mangopay_wallets WHERE id").
		WithArgs(w.ID).
		WillReturnRows(pgxmock.NewRows(walletColumns()).AddRow(
			w.ID, w.RemoteID, w.UserID, w.Currency, w.Description, w.CreatedAt, w.UpdatedAt,
		))

	result, err := repo.GetByID(context.Background(), w.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, w.ID, result.ID)
	assert.Equal(t, "w_1", *result.RemoteID)
	assert.Equal(t, "main wallet", *result.Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM mangopay_wallets WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(walletColumns()))

	result, err := repo.GetByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_Update(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet(uuid.New())
	w.RemoteID = strPtr("w_1")

	mock.ExpectExec("UPDATE mangopay_wallets SET remote_id").
		WithArgs(w.RemoteID, w.Description, w.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.Update(context.Background(), w))
	assert.NoError(t, mock.ExpectationsWereMet())
}
