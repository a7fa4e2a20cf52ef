package domain

import (
	"encoding/json"
	"time"

	"mangopay-sync/pkg/money"

	"github.com/google/uuid"
)

// PaymentKind discriminates pay-in variants stored in the same row.
type PaymentKind string

const (
	PaymentCard     PaymentKind = "CARD"
	PaymentBankWire PaymentKind = "BANK_WIRE"
)

// PayIn credits a wallet. Card fields are only meaningful for card
// pay-ins; wire fields only for bank wires and are filled after creation.
type PayIn struct {
	ID           uuid.UUID    `json:"id"`
	RemoteID     *string      `json:"remote_id,omitempty"`
	UserID       uuid.UUID    `json:"user_id"`
	WalletID     uuid.UUID    `json:"wallet_id"`
	Kind         PaymentKind  `json:"payment_type"`
	DebitedFunds money.Amount `json:"debited_funds"`
	Fees         money.Amount `json:"fees"`
	Outcome

	CardID                *uuid.UUID `json:"card_id,omitempty"`
	SecureModeReturnURL   *string    `json:"secure_mode_return_url,omitempty"`
	SecureModeRedirectURL *string    `json:"secure_mode_redirect_url,omitempty"`

	WireReference   *string         `json:"wire_reference,omitempty"`
	WireBankAccount json.RawMessage `json:"wire_bank_account,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *PayIn) HasRemoteID() bool { return hasRemoteID(p.RemoteID) }

// PayOut wires funds from a wallet to a registered bank account.
type PayOut struct {
	ID            uuid.UUID    `json:"id"`
	RemoteID      *string      `json:"remote_id,omitempty"`
	UserID        uuid.UUID    `json:"user_id"`
	WalletID      uuid.UUID    `json:"wallet_id"`
	BankAccountID uuid.UUID    `json:"bank_account_id"`
	DebitedFunds  money.Amount `json:"debited_funds"`
	Fees          money.Amount `json:"fees"`
	BankWireRef   *string      `json:"bank_wire_ref,omitempty"`
	Outcome
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *PayOut) HasRemoteID() bool { return hasRemoteID(p.RemoteID) }
