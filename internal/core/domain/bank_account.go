package domain

import (
	"time"

	"github.com/google/uuid"
)

// BankAccountType selects which account fields are meaningful.
type BankAccountType string

const (
	BankAccountIBAN  BankAccountType = "IBAN"
	BankAccountUS    BankAccountType = "US"
	BankAccountOther BankAccountType = "OTHER"
)

// DepositAccountType only applies to US accounts.
type DepositAccountType string

const (
	DepositChecking DepositAccountType = "CHECKING"
	DepositSavings  DepositAccountType = "SAVINGS"
)

// BankAccount is a payout destination registered for a user. Exactly one
// shape is populated, matching AccountType: IBAN/BIC for IBAN, ABA,
// deposit type and account number for US, account number for OTHER.
type BankAccount struct {
	ID                 uuid.UUID          `json:"id"`
	RemoteID           *string            `json:"remote_id,omitempty"`
	UserID             uuid.UUID          `json:"user_id"`
	Address            string             `json:"address"`
	AccountType        BankAccountType    `json:"account_type"`
	IBAN               *string            `json:"iban,omitempty"`
	BIC                *string            `json:"bic,omitempty"`
	Country            *string            `json:"country,omitempty"`
	AccountNumber      *string            `json:"account_number,omitempty"`
	ABA                *string            `json:"aba,omitempty"`
	DepositAccountType DepositAccountType `json:"deposit_account_type"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

func (b *BankAccount) HasRemoteID() bool { return hasRemoteID(b.RemoteID) }

// ShapeComplete reports whether the fields required by AccountType are
// populated. Unknown account types are never complete.
func (b *BankAccount) ShapeComplete() bool {
	switch b.AccountType {
	case BankAccountIBAN:
		return present(b.IBAN)
	case BankAccountUS:
		return present(b.ABA) && present(b.AccountNumber) && b.DepositAccountType != ""
	case BankAccountOther:
		return present(b.AccountNumber)
	default:
		return false
	}
}
