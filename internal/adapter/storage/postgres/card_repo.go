package postgres

import (
	"context"
	"errors"
	"fmt"

	"mangopay-sync/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CardRepo implements ports.CardRepository.
type CardRepo struct {
	pool Pool
}

// NewCardRepo creates a new CardRepo.
func NewCardRepo(pool Pool) *CardRepo {
	return &CardRepo{pool: pool}
}

// Create inserts a card within the registration's transaction.
func (r *CardRepo) Create(ctx context.Context, tx pgx.Tx, c *domain.Card) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO mangopay_cards (id, remote_id, expiration_date, alias, is_active, is_valid, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.RemoteID, c.ExpirationDate, c.Alias, c.IsActive, c.IsValid, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert card: %w", err)
	}
	return nil
}

func (r *CardRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	c := &domain.Card{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, remote_id, expiration_date, alias, is_active, is_valid, created_at, updated_at
		FROM mangopay_cards WHERE id = $1`, id,
	).Scan(&c.ID, &c.RemoteID, &c.ExpirationDate, &c.Alias, &c.IsActive, &c.IsValid, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get card by id: %w", err)
	}
	return c, nil
}

// Update mirrors the remote id and the processor card details.
func (r *CardRepo) Update(ctx context.Context, c *domain.Card) error {
	return execOne(ctx, r.pool, "update card",
		`UPDATE mangopay_cards SET remote_id = $1, expiration_date = $2, alias = $3, is_active = $4,
		is_valid = $5, updated_at = NOW() WHERE id = $6`,
		c.RemoteID, c.ExpirationDate, c.Alias, c.IsActive, c.IsValid, c.ID,
	)
}

// CardRegistrationRepo implements ports.CardRegistrationRepository.
type CardRegistrationRepo struct {
	pool Pool
}

// NewCardRegistrationRepo creates a new CardRegistrationRepo.
func NewCardRegistrationRepo(pool Pool) *CardRegistrationRepo {
	return &CardRegistrationRepo{pool: pool}
}

// Save inserts or updates the local fields of a registration. The
// remote id is left untouched on conflict; only Update mirrors it.
func (r *CardRegistrationRepo) Save(ctx context.Context, tx pgx.Tx, reg *domain.CardRegistration) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO mangopay_card_registrations (id, remote_id, user_id, card_id, currency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET user_id = EXCLUDED.user_id, card_id = EXCLUDED.card_id,
		currency = EXCLUDED.currency, updated_at = EXCLUDED.updated_at`,
		reg.ID, reg.RemoteID, reg.UserID, reg.CardID, reg.Currency, reg.CreatedAt, reg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save card registration: %w", err)
	}
	return nil
}

func (r *CardRegistrationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CardRegistration, error) {
	reg := &domain.CardRegistration{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, remote_id, user_id, card_id, currency, created_at, updated_at
		FROM mangopay_card_registrations WHERE id = $1`, id,
	).Scan(&reg.ID, &reg.RemoteID, &reg.UserID, &reg.CardID, &reg.Currency, &reg.CreatedAt, &reg.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get card registration by id: %w", err)
	}
	return reg, nil
}

func (r *CardRegistrationRepo) Update(ctx context.Context, reg *domain.CardRegistration) error {
	return execOne(ctx, r.pool, "update card registration",
		`UPDATE mangopay_card_registrations SET remote_id = $1, updated_at = NOW() WHERE id = $2`,
		reg.RemoteID, reg.ID,
	)
}
