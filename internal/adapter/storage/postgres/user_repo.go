package postgres

import (
	"context"
	"errors"
	"fmt"

	"mangopay-sync/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UserRepo implements ports.UserRepository. Natural and legal users share
// one table; the variant columns of the other kind stay NULL.
type UserRepo struct {
	pool Pool
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(pool Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userSelect = `SELECT u.id, u.remote_id, u.kind, a.id, a.first_name, a.last_name, a.email,
	u.first_name, u.last_name, u.email, u.birthday, u.nationality, u.country_of_residence, u.address,
	u.occupation, u.income_range, u.legal_person_type, u.business_name, u.business_email,
	u.headquarters_address, u.created_at, u.updated_at
	FROM mangopay_users u JOIN accounts a ON a.id = u.account_id`

// userVariant flattens the variant payload into nullable columns.
type userVariant struct {
	occupation          *string
	incomeRange         *string
	legalPersonType     *string
	businessName        *string
	businessEmail       *string
	headquartersAddress *string
}

func variantOf(u *domain.User) userVariant {
	var v userVariant
	if u.Natural != nil {
		v.occupation = u.Natural.Occupation
		v.incomeRange = u.Natural.IncomeRange
	}
	if u.Legal != nil {
		lpt := string(u.Legal.LegalPersonType)
		v.legalPersonType = &lpt
		v.businessName = &u.Legal.BusinessName
		v.businessEmail = &u.Legal.BusinessEmail
		v.headquartersAddress = u.Legal.HeadquartersAddress
	}
	return v
}

func (v userVariant) apply(u *domain.User) {
	switch u.Kind {
	case domain.UserKindNatural:
		u.Natural = &domain.NaturalDetails{Occupation: v.occupation, IncomeRange: v.incomeRange}
	case domain.UserKindLegal:
		u.Legal = &domain.LegalDetails{
			LegalPersonType:     domain.LegalPersonType(deref(v.legalPersonType)),
			BusinessName:        deref(v.businessName),
			BusinessEmail:       deref(v.businessEmail),
			HeadquartersAddress: v.headquartersAddress,
		}
	}
}

// Create inserts a new user. The linked account must already exist.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO mangopay_users (id, remote_id, kind, account_id, first_name, last_name, email,
		birthday, nationality, country_of_residence, address, occupation, income_range,
		legal_person_type, business_name, business_email, headquarters_address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	v := variantOf(u)
	_, err := r.pool.Exec(ctx, query,
		u.ID, u.RemoteID, string(u.Kind), u.Account.ID, u.FirstName, u.LastName, u.Email,
		u.Birthday, u.Nationality, u.CountryOfResidence, u.Address, v.occupation, v.incomeRange,
		v.legalPersonType, v.businessName, v.businessEmail, v.headquartersAddress, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID fetches a user together with its linked account.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var (
		u    domain.User
		v    userVariant
		kind string
	)
	err := r.pool.QueryRow(ctx, userSelect+` WHERE u.id = $1`, id).Scan(
		&u.ID, &u.RemoteID, &kind, &u.Account.ID, &u.Account.FirstName, &u.Account.LastName, &u.Account.Email,
		&u.FirstName, &u.LastName, &u.Email, &u.Birthday, &u.Nationality, &u.CountryOfResidence, &u.Address,
		&v.occupation, &v.incomeRange, &v.legalPersonType, &v.businessName, &v.businessEmail,
		&v.headquartersAddress, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	u.Kind = domain.UserKind(kind)
	v.apply(&u)
	return &u, nil
}

// Update writes every mutable column. The kind and account never change.
func (r *UserRepo) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE mangopay_users SET remote_id = $1, first_name = $2, last_name = $3, email = $4,
		birthday = $5, nationality = $6, country_of_residence = $7, address = $8, occupation = $9,
		income_range = $10, legal_person_type = $11, business_name = $12, business_email = $13,
		headquarters_address = $14, updated_at = NOW()
		WHERE id = $15`

	v := variantOf(u)
	return execOne(ctx, r.pool, "update user", query,
		u.RemoteID, u.FirstName, u.LastName, u.Email,
		u.Birthday, u.Nationality, u.CountryOfResidence, u.Address, v.occupation,
		v.incomeRange, v.legalPersonType, v.businessName, v.businessEmail,
		v.headquartersAddress, u.ID,
	)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
