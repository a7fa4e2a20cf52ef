// Package resource holds the wire shape of payment processor resources.
// Values are built from local records and consumed by the remote client.
package resource

import (
	"encoding/json"

	"mangopay-sync/pkg/money"
)

// Kind names a processor resource type.
type Kind string

const (
	KindNaturalUser      Kind = "NATURAL_USER"
	KindLegalUser        Kind = "LEGAL_USER"
	KindDocument         Kind = "KYC_DOCUMENT"
	KindPage             Kind = "KYC_PAGE"
	KindBankAccount      Kind = "BANK_ACCOUNT"
	KindWallet           Kind = "WALLET"
	KindCardDirectPayIn  Kind = "PAYIN_CARD_DIRECT"
	KindBankWirePayIn    Kind = "PAYIN_BANKWIRE_DIRECT"
	KindPayIn            Kind = "PAYIN"
	KindBankWirePayOut   Kind = "PAYOUT_BANKWIRE"
	KindTransfer         Kind = "TRANSFER"
	KindPayInRefund      Kind = "PAYIN_REFUND"
	KindCardRegistration Kind = "CARD_REGISTRATION"
	KindCard             Kind = "CARD"
)

// Resource is anything the remote client can submit.
type Resource interface {
	Kind() Kind
}

// Address is the processor address object. Only the first line is
// mapped from local records.
type Address struct {
	AddressLine1 string `json:"AddressLine1,omitempty"`
	AddressLine2 string `json:"AddressLine2,omitempty"`
	City         string `json:"City,omitempty"`
	Region       string `json:"Region,omitempty"`
	PostalCode   string `json:"PostalCode,omitempty"`
	Country      string `json:"Country,omitempty"`
}

// NewAddress returns nil for an empty line so the field is omitted.
func NewAddress(line1 string) *Address {
	if line1 == "" {
		return nil
	}
	return &Address{AddressLine1: line1}
}

type NaturalUser struct {
	ID                 string   `json:"Id,omitempty"`
	PersonType         string   `json:"PersonType"`
	FirstName          string   `json:"FirstName"`
	LastName           string   `json:"LastName"`
	Email              string   `json:"Email"`
	Address            *Address `json:"Address,omitempty"`
	Birthday           *int64   `json:"Birthday,omitempty"`
	Nationality        string   `json:"Nationality"`
	CountryOfResidence string   `json:"CountryOfResidence"`
	Occupation         string   `json:"Occupation,omitempty"`
	IncomeRange        string   `json:"IncomeRange,omitempty"`
}

func (NaturalUser) Kind() Kind { return KindNaturalUser }

type LegalUser struct {
	ID                                    string   `json:"Id,omitempty"`
	PersonType                            string   `json:"PersonType"`
	Email                                 string   `json:"Email"`
	Name                                  string   `json:"Name"`
	LegalPersonType                       string   `json:"LegalPersonType"`
	HeadquartersAddress                   *Address `json:"HeadquartersAddress,omitempty"`
	LegalRepresentativeFirstName          string   `json:"LegalRepresentativeFirstName"`
	LegalRepresentativeLastName           string   `json:"LegalRepresentativeLastName"`
	LegalRepresentativeAddress            *Address `json:"LegalRepresentativeAddress,omitempty"`
	LegalRepresentativeEmail              string   `json:"LegalRepresentativeEmail,omitempty"`
	LegalRepresentativeBirthday           *int64   `json:"LegalRepresentativeBirthday,omitempty"`
	LegalRepresentativeNationality        string   `json:"LegalRepresentativeNationality"`
	LegalRepresentativeCountryOfResidence string   `json:"LegalRepresentativeCountryOfResidence"`
}

func (LegalUser) Kind() Kind { return KindLegalUser }

// Document is a KYC document. Status is only sent on updates.
type Document struct {
	ID     string `json:"Id,omitempty"`
	UserID string `json:"-"`
	Type   string `json:"Type"`
	Status string `json:"Status,omitempty"`
}

func (Document) Kind() Kind { return KindDocument }

// Page carries one base64-encoded document page.
type Page struct {
	UserID     string `json:"-"`
	DocumentID string `json:"-"`
	File       string `json:"File"`
}

func (Page) Kind() Kind { return KindPage }

type BankAccount struct {
	ID                 string   `json:"Id,omitempty"`
	UserID             string   `json:"-"`
	Type               string   `json:"Type"`
	OwnerName          string   `json:"OwnerName"`
	OwnerAddress       *Address `json:"OwnerAddress,omitempty"`
	IBAN               string   `json:"IBAN,omitempty"`
	BIC                string   `json:"BIC,omitempty"`
	ABA                string   `json:"ABA,omitempty"`
	DepositAccountType string   `json:"DepositAccountType,omitempty"`
	AccountNumber      string   `json:"AccountNumber,omitempty"`
	Country            string   `json:"Country,omitempty"`
}

func (BankAccount) Kind() Kind { return KindBankAccount }

type Wallet struct {
	ID          string   `json:"Id,omitempty"`
	Owners      []string `json:"Owners"`
	Description string   `json:"Description"`
	Currency    string   `json:"Currency"`
}

func (Wallet) Kind() Kind { return KindWallet }

type DirectPayIn struct {
	AuthorID            string      `json:"AuthorId"`
	CreditedWalletID    string      `json:"CreditedWalletId"`
	DebitedFunds        money.Minor `json:"DebitedFunds"`
	Fees                money.Minor `json:"Fees"`
	CardID              string      `json:"CardId"`
	SecureMode          string      `json:"SecureMode"`
	SecureModeReturnURL string      `json:"SecureModeReturnURL"`
	PaymentType         string      `json:"PaymentType"`
}

func (DirectPayIn) Kind() Kind { return KindCardDirectPayIn }

type BankWirePayIn struct {
	AuthorID             string      `json:"AuthorId"`
	CreditedWalletID     string      `json:"CreditedWalletId"`
	DeclaredDebitedFunds money.Minor `json:"DeclaredDebitedFunds"`
	DeclaredFees         money.Minor `json:"DeclaredFees"`
	PaymentType          string      `json:"PaymentType"`
}

func (BankWirePayIn) Kind() Kind { return KindBankWirePayIn }

type BankWirePayOut struct {
	ID              string      `json:"Id,omitempty"`
	AuthorID        string      `json:"AuthorId"`
	DebitedWalletID string      `json:"DebitedWalletId"`
	DebitedFunds    money.Minor `json:"DebitedFunds"`
	Fees            money.Minor `json:"Fees"`
	BankAccountID   string      `json:"BankAccountId"`
	BankWireRef     string      `json:"BankWireRef,omitempty"`
}

func (BankWirePayOut) Kind() Kind { return KindBankWirePayOut }

type Transfer struct {
	ID               string      `json:"Id,omitempty"`
	AuthorID         string      `json:"AuthorId"`
	CreditedUserID   string      `json:"CreditedUserId"`
	DebitedFunds     money.Minor `json:"DebitedFunds"`
	Fees             money.Minor `json:"Fees"`
	DebitedWalletID  string      `json:"DebitedWalletId"`
	CreditedWalletID string      `json:"CreditedWalletId"`
}

func (Transfer) Kind() Kind { return KindTransfer }

type PayInRefund struct {
	PayInID  string `json:"-"`
	AuthorID string `json:"AuthorId"`
}

func (PayInRefund) Kind() Kind { return KindPayInRefund }

type CardRegistration struct {
	ID       string `json:"Id,omitempty"`
	UserID   string `json:"UserId"`
	Currency string `json:"Currency"`
}

func (CardRegistration) Kind() Kind { return KindCardRegistration }

// Response is what the processor returns for a created, updated or
// fetched resource. Fields not relevant to a kind stay zero.
type Response struct {
	ID            string `json:"Id"`
	Status        string `json:"Status"`
	ResultCode    string `json:"ResultCode"`
	ResultMessage string `json:"ResultMessage"`
	CreationDate  *int64 `json:"CreationDate"`

	// Pay-ins
	WireReference         string          `json:"WireReference"`
	BankAccount           json.RawMessage `json:"BankAccount,omitempty"`
	SecureModeRedirectURL string          `json:"SecureModeRedirectURL"`

	// KYC documents
	RefusedReasonType    string `json:"RefusedReasonType"`
	RefusedReasonMessage string `json:"RefusedReasonMessage"`

	// Cards
	Validity       string `json:"Validity"`
	Active         *bool  `json:"Active"`
	Alias          string `json:"Alias"`
	ExpirationDate string `json:"ExpirationDate"`

	// Card registrations
	AccessKey           string `json:"AccessKey"`
	PreregistrationData string `json:"PreregistrationData"`
	CardRegistrationURL string `json:"CardRegistrationURL"`
	CardID              string `json:"CardId"`

	// Wallets
	Balance *money.Minor `json:"Balance"`
}
