package dto

// AmountRequest is a decimal amount as sent by operators, e.g. "12.50".
type AmountRequest struct {
	Value    string `json:"value" binding:"required,decimal_amount"`
	Currency string `json:"currency" binding:"required,len=3"`
}

// RegisterUserRequest reserves a local user row. Names and email fall back
// to the linked account when omitted.
type RegisterUserRequest struct {
	Type               string  `json:"type" binding:"required,oneof=NATURAL LEGAL"`
	AccountID          string  `json:"account_id" binding:"required,uuid"`
	FirstName          *string `json:"first_name,omitempty" binding:"omitempty,max=100"`
	LastName           *string `json:"last_name,omitempty" binding:"omitempty,max=100"`
	Email              *string `json:"email,omitempty" binding:"omitempty,email"`
	Birthday           *string `json:"birthday,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Nationality        string  `json:"nationality" binding:"omitempty,len=2"`
	CountryOfResidence string  `json:"country_of_residence" binding:"omitempty,len=2"`
	Address            *string `json:"address,omitempty" binding:"omitempty,max=255"`

	Occupation  *string `json:"occupation,omitempty" binding:"omitempty,max=100"`
	IncomeRange *string `json:"income_range,omitempty" binding:"omitempty,oneof=1 2 3 4 5 6"`

	LegalPersonType     string  `json:"legal_person_type,omitempty" binding:"omitempty,oneof=BUSINESS ORGANIZATION SOLETRADER"`
	BusinessName        string  `json:"business_name,omitempty" binding:"omitempty,max=255"`
	BusinessEmail       string  `json:"business_email,omitempty" binding:"omitempty,email"`
	HeadquartersAddress *string `json:"headquarters_address,omitempty" binding:"omitempty,max=255"`
}

// RegisterDocumentRequest reserves a KYC document for the user in the path.
type RegisterDocumentRequest struct {
	Type string `json:"type" binding:"required,oneof=IP RP SD AA"`
}

// UploadPageRequest points at the externally stored page file.
type UploadPageRequest struct {
	FileURL string `json:"file_url" binding:"required,safe_url"`
}

type RegisterBankAccountRequest struct {
	UserID             string  `json:"user_id" binding:"required,uuid"`
	Address            string  `json:"address" binding:"required,max=255"`
	AccountType        string  `json:"account_type" binding:"required,oneof=IBAN US OTHER"`
	IBAN               *string `json:"iban,omitempty" binding:"omitempty,alphanum,max=34"`
	BIC                *string `json:"bic,omitempty" binding:"omitempty,alphanum,max=11"`
	Country            *string `json:"country,omitempty" binding:"omitempty,len=2"`
	AccountNumber      *string `json:"account_number,omitempty" binding:"omitempty,max=34"`
	ABA                *string `json:"aba,omitempty" binding:"omitempty,numeric,len=9"`
	DepositAccountType string  `json:"deposit_account_type,omitempty" binding:"omitempty,oneof=CHECKING SAVINGS"`
}

type RegisterWalletRequest struct {
	UserID      string  `json:"user_id" binding:"required,uuid"`
	Currency    string  `json:"currency" binding:"omitempty,len=3"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=255"`
}

type RegisterPayInRequest struct {
	UserID              string         `json:"user_id" binding:"required,uuid"`
	WalletID            string         `json:"wallet_id" binding:"required,uuid"`
	PaymentType         string         `json:"payment_type" binding:"required,oneof=CARD BANK_WIRE"`
	DebitedFunds        AmountRequest  `json:"debited_funds"`
	Fees                *AmountRequest `json:"fees,omitempty"`
	CardID              *string        `json:"card_id,omitempty" binding:"omitempty,uuid"`
	SecureModeReturnURL *string        `json:"secure_mode_return_url,omitempty" binding:"omitempty,safe_url"`
}

type RegisterPayOutRequest struct {
	UserID        string         `json:"user_id" binding:"required,uuid"`
	WalletID      string         `json:"wallet_id" binding:"required,uuid"`
	BankAccountID string         `json:"bank_account_id" binding:"required,uuid"`
	DebitedFunds  AmountRequest  `json:"debited_funds"`
	Fees          *AmountRequest `json:"fees,omitempty"`
	BankWireRef   *string        `json:"bank_wire_ref,omitempty" binding:"omitempty,max=12"`
}

type RegisterTransferRequest struct {
	DebitedWalletID  string         `json:"debited_wallet_id" binding:"required,uuid"`
	CreditedWalletID string         `json:"credited_wallet_id" binding:"required,uuid"`
	DebitedFunds     AmountRequest  `json:"debited_funds"`
	Fees             *AmountRequest `json:"fees,omitempty"`
}

type RegisterRefundRequest struct {
	UserID  string `json:"user_id" binding:"required,uuid"`
	PayInID string `json:"payin_id" binding:"required,uuid"`
}

// SaveCardRegistrationRequest saves a registration locally. A card is
// created alongside it unless CardID links an existing one.
type SaveCardRegistrationRequest struct {
	UserID   string  `json:"user_id" binding:"required,uuid"`
	Currency string  `json:"currency" binding:"omitempty,len=3"`
	CardID   *string `json:"card_id,omitempty" binding:"omitempty,uuid"`
}

// SaveCardRequest carries the processor card id returned by client-side
// tokenization.
type SaveCardRequest struct {
	CardID string `json:"card_id" binding:"required,safe_id,max=64"`
}

// BalanceResponse is the live wallet balance; null when the processor
// reports none.
type BalanceResponse struct {
	WalletID string  `json:"wallet_id"`
	Balance  *string `json:"balance"`
	Currency string  `json:"currency,omitempty"`
}
