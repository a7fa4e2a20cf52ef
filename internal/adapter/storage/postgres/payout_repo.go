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

// PayOutRepo implements ports.PayOutRepository.
type PayOutRepo struct {
	pool Pool
}

// NewPayOutRepo creates a new PayOutRepo.
func NewPayOutRepo(pool Pool) *PayOutRepo {
	return &PayOutRepo{pool: pool}
}

func (r *PayOutRepo) Create(ctx context.Context, p *domain.PayOut) error {
	query := `INSERT INTO mangopay_payouts (id, remote_id, user_id, wallet_id, bank_account_id, debited_amount,
		fees_amount, currency, bank_wire_ref, execution_date, status, result_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	o := outcomeOf(p.Outcome)
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.RemoteID, p.UserID, p.WalletID, p.BankAccountID, p.DebitedFunds.Value,
		p.Fees.Value, p.DebitedFunds.Currency, p.BankWireRef, o.executionDate, o.status, o.resultCode,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payout: %w", err)
	}
	return nil
}

func (r *PayOutRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PayOut, error) {
	query := `SELECT id, remote_id, user_id, wallet_id, bank_account_id, debited_amount, fees_amount, currency,
		bank_wire_ref, execution_date, status, result_code, created_at, updated_at
		FROM mangopay_payouts WHERE id = $1`

	var (
		p        domain.PayOut
		debited  decimal.Decimal
		fees     decimal.Decimal
		currency string
		o        outcomeColumns
	)
	dest := []any{&p.ID, &p.RemoteID, &p.UserID, &p.WalletID, &p.BankAccountID, &debited, &fees, &currency, &p.BankWireRef}
	dest = append(dest, o.dest()...)
	dest = append(dest, &p.CreatedAt, &p.UpdatedAt)

	if err := r.pool.QueryRow(ctx, query, id).Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payout by id: %w", err)
	}
	p.DebitedFunds = amountOf(debited, currency)
	p.Fees = amountOf(fees, currency)
	p.Outcome = o.outcome()
	return &p, nil
}

func (r *PayOutRepo) Update(ctx context.Context, p *domain.PayOut) error {
	o := outcomeOf(p.Outcome)
	return execOne(ctx, r.pool, "update payout",
		`UPDATE mangopay_payouts SET remote_id = $1, execution_date = $2, status = $3, result_code = $4,
		updated_at = NOW() WHERE id = $5`,
		p.RemoteID, o.executionDate, o.status, o.resultCode, p.ID,
	)
}
