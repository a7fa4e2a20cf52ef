package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"mangopay-sync/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PayInRepo implements ports.PayInRepository for both card and bank
// wire pay-ins.
type PayInRepo struct {
	pool Pool
}

// NewPayInRepo creates a new PayInRepo.
func NewPayInRepo(pool Pool) *PayInRepo {
	return &PayInRepo{pool: pool}
}

// Create inserts a new pay-in. Debited funds and fees share one currency.
func (r *PayInRepo) Create(ctx context.Context, p *domain.PayIn) error {
	query := `INSERT INTO mangopay_payins (id, remote_id, user_id, wallet_id, payment_type, debited_amount,
		fees_amount, currency, card_id, secure_mode_return_url, secure_mode_redirect_url, wire_reference,
		wire_bank_account, execution_date, status, result_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	o := outcomeOf(p.Outcome)
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.RemoteID, p.UserID, p.WalletID, string(p.Kind), p.DebitedFunds.Value,
		p.Fees.Value, p.DebitedFunds.Currency, p.CardID, p.SecureModeReturnURL, p.SecureModeRedirectURL, p.WireReference,
		wireBankAccount(p), o.executionDate, o.status, o.resultCode, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payin: %w", err)
	}
	return nil
}

// GetByID fetches a pay-in by its UUID.
func (r *PayInRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PayIn, error) {
	query := `SELECT id, remote_id, user_id, wallet_id, payment_type, debited_amount, fees_amount, currency,
		card_id, secure_mode_return_url, secure_mode_redirect_url, wire_reference, wire_bank_account,
		execution_date, status, result_code, created_at, updated_at
		FROM mangopay_payins WHERE id = $1`

	var (
		p        domain.PayIn
		kind     string
		debited  decimal.Decimal
		fees     decimal.Decimal
		currency string
		wire     []byte
		o        outcomeColumns
	)
	dest := []any{
		&p.ID, &p.RemoteID, &p.UserID, &p.WalletID, &kind, &debited, &fees, &currency,
		&p.CardID, &p.SecureModeReturnURL, &p.SecureModeRedirectURL, &p.WireReference, &wire,
	}
	dest = append(dest, o.dest()...)
	dest = append(dest, &p.CreatedAt, &p.UpdatedAt)

	if err := r.pool.QueryRow(ctx, query, id).Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payin by id: %w", err)
	}
	p.Kind = domain.PaymentKind(kind)
	p.DebitedFunds = amountOf(debited, currency)
	p.Fees = amountOf(fees, currency)
	if len(wire) > 0 {
		p.WireBankAccount = json.RawMessage(wire)
	}
	p.Outcome = o.outcome()
	return &p, nil
}

// Update mirrors the processor fields of a pay-in.
func (r *PayInRepo) Update(ctx context.Context, p *domain.PayIn) error {
	query := `UPDATE mangopay_payins SET remote_id = $1, secure_mode_redirect_url = $2, wire_reference = $3,
		wire_bank_account = $4, execution_date = $5, status = $6, result_code = $7, updated_at = NOW()
		WHERE id = $8`

	o := outcomeOf(p.Outcome)
	return execOne(ctx, r.pool, "update payin", query,
		p.RemoteID, p.SecureModeRedirectURL, p.WireReference,
		wireBankAccount(p), o.executionDate, o.status, o.resultCode, p.ID,
	)
}

// wireBankAccount returns nil for an absent payload so the column is NULL.
func wireBankAccount(p *domain.PayIn) []byte {
	if len(p.WireBankAccount) == 0 {
		return nil
	}
	return []byte(p.WireBankAccount)
}
