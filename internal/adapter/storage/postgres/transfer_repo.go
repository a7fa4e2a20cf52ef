package postgres

import (
	"context"
	"errors"
	"fmt"

	"mangopay-sync/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// TransferRepo implements ports.TransferRepository.
type TransferRepo struct {
	pool Pool
}

// NewTransferRepo creates a new TransferRepo.
func NewTransferRepo(pool Pool) *TransferRepo {
	return &TransferRepo{pool: pool}
}

func (r *TransferRepo) Create(ctx context.Context, t *domain.Transfer) error {
	query := `INSERT INTO mangopay_transfers (id, remote_id, debited_wallet_id, credited_wallet_id, debited_amount,
		fees_amount, currency, execution_date, status, result_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	o := outcomeOf(t.Outcome)
	_, err := r.pool.Exec(ctx, query,
		t.ID, t.RemoteID, t.DebitedWalletID, t.CreditedWalletID, t.DebitedFunds.Value,
		t.Fees.Value, t.DebitedFunds.Currency, o.executionDate, o.status, o.resultCode, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

func (r *TransferRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transfer, error) {
	query := `SELECT id, remote_id, debited_wallet_id, credited_wallet_id, debited_amount, fees_amount, currency,
		execution_date, status, result_code, created_at, updated_at
		FROM mangopay_transfers WHERE id = $1`

	var (
		t        domain.Transfer
		debited  decimal.Decimal
		fees     decimal.Decimal
		currency string
		o        outcomeColumns
	)
	dest := []any{&t.ID, &t.RemoteID, &t.DebitedWalletID, &t.CreditedWalletID, &debited, &fees, &currency}
	dest = append(dest, o.dest()...)
	dest = append(dest, &t.CreatedAt, &t.UpdatedAt)

	if err := r.pool.QueryRow(ctx, query, id).Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer by id: %w", err)
	}
	t.DebitedFunds = amountOf(debited, currency)
	t.Fees = amountOf(fees, currency)
	t.Outcome = o.outcome()
	return &t, nil
}

func (r *TransferRepo) Update(ctx context.Context, t *domain.Transfer) error {
	o := outcomeOf(t.Outcome)
	return execOne(ctx, r.pool, "update transfer",
		`UPDATE mangopay_transfers SET remote_id = $1, execution_date = $2, status = $3, result_code = $4,
		updated_at = NOW() WHERE id = $5`,
		t.RemoteID, o.executionDate, o.status, o.resultCode, t.ID,
	)
}
