package ports

import (
	"context"

	"mangopay-sync/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Repositories return (nil, nil) from GetByID when the record does not exist.

// UserRepository persists local user records.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

// DocumentRepository persists KYC documents.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Document, error)
	Update(ctx context.Context, doc *domain.Document) error
}

// PageRepository persists document pages. Pages are write-once.
type PageRepository interface {
	Create(ctx context.Context, page *domain.Page) error
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]domain.Page, error)
}

type BankAccountRepository interface {
	Create(ctx context.Context, acct *domain.BankAccount) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BankAccount, error)
	Update(ctx context.Context, acct *domain.BankAccount) error
}

type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.Wallet) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
	Update(ctx context.Context, wallet *domain.Wallet) error
}

type PayInRepository interface {
	Create(ctx context.Context, payIn *domain.PayIn) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PayIn, error)
	Update(ctx context.Context, payIn *domain.PayIn) error
}

type PayOutRepository interface {
	Create(ctx context.Context, payOut *domain.PayOut) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PayOut, error)
	Update(ctx context.Context, payOut *domain.PayOut) error
}

type TransferRepository interface {
	Create(ctx context.Context, transfer *domain.Transfer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transfer, error)
	Update(ctx context.Context, transfer *domain.Transfer) error
}

type RefundRepository interface {
	Create(ctx context.Context, refund *domain.Refund) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Refund, error)
	Update(ctx context.Context, refund *domain.Refund) error
}

// CardRepository persists cards. Create runs inside the transaction that
// saves the owning registration.
type CardRepository interface {
	Create(ctx context.Context, tx pgx.Tx, card *domain.Card) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error)
	Update(ctx context.Context, card *domain.Card) error
}

// CardRegistrationRepository persists card registrations. Save is an
// upsert used on every local save; Update mirrors remote fields only.
type CardRegistrationRepository interface {
	Save(ctx context.Context, tx pgx.Tx, reg *domain.CardRegistration) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CardRegistration, error)
	Update(ctx context.Context, reg *domain.CardRegistration) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// AuditRepository persists sync audit entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}
