package ports

import (
	"context"
	"time"

	"mangopay-sync/internal/core/domain"
	"mangopay-sync/pkg/money"

	"github.com/google/uuid"
)

// AuthenticationReport summarizes a user's KYC level.
type AuthenticationReport struct {
	UserID              uuid.UUID             `json:"user_id"`
	Kind                domain.UserKind       `json:"type"`
	Light               bool                  `json:"light_authentication"`
	Regular             bool                  `json:"regular_authentication"`
	RequiredDocuments   []domain.DocumentType `json:"required_documents"`
	DocumentsToReupload []domain.DocumentType `json:"documents_to_reupload"`
}

// UserSyncService mirrors users on the processor.
type UserSyncService interface {
	Register(ctx context.Context, user *domain.User) error
	Create(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID) error
	Authentication(ctx context.Context, id uuid.UUID) (*AuthenticationReport, error)
}

// DocumentSyncService drives the KYC document workflow.
type DocumentSyncService interface {
	Register(ctx context.Context, userID uuid.UUID, docType domain.DocumentType) (*domain.Document, error)
	Create(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	AskForValidation(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	UploadPage(ctx context.Context, documentID uuid.UUID, fileURL string) (*domain.Page, error)
	Pages(ctx context.Context, documentID uuid.UUID) ([]domain.Page, error)
}

type BankAccountSyncService interface {
	Register(ctx context.Context, acct *domain.BankAccount) error
	Create(ctx context.Context, id uuid.UUID) (*domain.BankAccount, error)
}

type WalletSyncService interface {
	Register(ctx context.Context, wallet *domain.Wallet) error
	Create(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
	// Balance is fetched live; nil when the processor reports none.
	Balance(ctx context.Context, id uuid.UUID) (*money.Amount, error)
}

type PayInSyncService interface {
	Register(ctx context.Context, payIn *domain.PayIn) error
	Create(ctx context.Context, id uuid.UUID) (*domain.PayIn, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.PayIn, error)
}

type PayOutSyncService interface {
	Register(ctx context.Context, payOut *domain.PayOut) error
	Create(ctx context.Context, id uuid.UUID) (*domain.PayOut, error)
}

type TransferSyncService interface {
	Register(ctx context.Context, transfer *domain.Transfer) error
	Create(ctx context.Context, id uuid.UUID) (*domain.Transfer, error)
}

type RefundSyncService interface {
	Register(ctx context.Context, refund *domain.Refund) error
	Create(ctx context.Context, id uuid.UUID) (*domain.Refund, error)
}

// CardSyncService drives card registration and tokenization.
type CardSyncService interface {
	SaveRegistration(ctx context.Context, reg *domain.CardRegistration) error
	CreateRegistration(ctx context.Context, id uuid.UUID) (*domain.CardRegistration, error)
	PreregistrationData(ctx context.Context, id uuid.UUID) (*domain.PreregistrationData, error)
	SaveCardID(ctx context.Context, registrationID uuid.UUID, cardRemoteID string) (*domain.Card, error)
	RefreshCard(ctx context.Context, cardID uuid.UUID) (*domain.Card, error)
}

// TokenService issues and validates operator JWTs for the ops API.
type TokenService interface {
	Generate(subject string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject string
}

// EncryptionService protects bank account numbers at rest.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// AuditService records audit entries without blocking the caller.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
