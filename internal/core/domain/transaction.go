package domain

import (
	"time"

	"mangopay-sync/pkg/money"

	"github.com/google/uuid"
)

// TransactionStatus is the processor status of a money movement.
type TransactionStatus string

const (
	TransactionCreated   TransactionStatus = "CREATED"
	TransactionSucceeded TransactionStatus = "SUCCEEDED"
	TransactionFailed    TransactionStatus = "FAILED"
)

// IsTerminal returns true once the processor has decided the outcome.
func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionSucceeded || s == TransactionFailed
}

// Outcome holds the reconciled processor fields shared by pay-ins,
// pay-outs, transfers and refunds.
type Outcome struct {
	ExecutionDate *time.Time         `json:"execution_date,omitempty"`
	Status        *TransactionStatus `json:"status,omitempty"`
	ResultCode    *string            `json:"result_code,omitempty"`
}

// Transfer moves funds between two wallets, possibly owned by different
// users.
type Transfer struct {
	ID               uuid.UUID    `json:"id"`
	RemoteID         *string      `json:"remote_id,omitempty"`
	DebitedWalletID  uuid.UUID    `json:"debited_wallet_id"`
	CreditedWalletID uuid.UUID    `json:"credited_wallet_id"`
	DebitedFunds     money.Amount `json:"debited_funds"`
	Fees             money.Amount `json:"fees"`
	Outcome
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Transfer) HasRemoteID() bool { return hasRemoteID(t.RemoteID) }

// Refund reverses a pay-in. It is created once and never changed after
// the processor confirmed it.
type Refund struct {
	ID       uuid.UUID `json:"id"`
	RemoteID *string   `json:"remote_id,omitempty"`
	UserID   uuid.UUID `json:"user_id"`
	PayInID  uuid.UUID `json:"payin_id"`
	Outcome
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Refund) HasRemoteID() bool { return hasRemoteID(r.RemoteID) }
