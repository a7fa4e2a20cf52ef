package postgres

import (
	"context"
	"errors"
	"fmt"

	"mangopay-sync/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RefundRepo implements ports.RefundRepository.
type RefundRepo struct {
	pool Pool
}

// NewRefundRepo creates a new RefundRepo.
func NewRefundRepo(pool Pool) *RefundRepo {
	return &RefundRepo{pool: pool}
}

func (r *RefundRepo) Create(ctx context.Context, ref *domain.Refund) error {
	o := outcomeOf(ref.Outcome)
	_, err := r.pool.Exec(ctx,
		`INSERT INTO mangopay_refunds (id, remote_id, user_id, payin_id, execution_date, status, result_code,
		created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		ref.ID, ref.RemoteID, ref.UserID, ref.PayInID, o.executionDate, o.status, o.resultCode,
		ref.CreatedAt, ref.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert refund: %w", err)
	}
	return nil
}

func (r *RefundRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Refund, error) {
	var (
		ref domain.Refund
		o   outcomeColumns
	)
	dest := []any{&ref.ID, &ref.RemoteID, &ref.UserID, &ref.PayInID}
	dest = append(dest, o.dest()...)
	dest = append(dest, &ref.CreatedAt, &ref.UpdatedAt)

	err := r.pool.QueryRow(ctx,
		`SELECT id, remote_id, user_id, payin_id, execution_date, status, result_code, created_at, updated_at
		FROM mangopay_refunds WHERE id = $1`, id,
	).Scan(dest...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get refund by id: %w", err)
	}
	ref.Outcome = o.outcome()
	return &ref, nil
}

func (r *RefundRepo) Update(ctx context.Context, ref *domain.Refund) error {
	o := outcomeOf(ref.Outcome)
	return execOne(ctx, r.pool, "update refund",
		`UPDATE mangopay_refunds SET remote_id = $1, execution_date = $2, status = $3, result_code = $4,
		updated_at = NOW() WHERE id = $5`,
		ref.RemoteID, o.executionDate, o.status, o.resultCode, ref.ID,
	)
}
