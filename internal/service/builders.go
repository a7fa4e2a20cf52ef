package service

import (
	"encoding/base64"
	"time"

	"mangopay-sync/internal/core/domain"
	"mangopay-sync/internal/core/resource"
	"mangopay-sync/pkg/apperror"
	"mangopay-sync/pkg/money"
)

// Builders map local records to processor resources. They only read
// their arguments and never touch storage or the network.

// BuildUser dispatches on the user kind.
func BuildUser(u *domain.User) (resource.Resource, error) {
	if u.IsLegal() {
		return BuildLegalUser(u), nil
	}
	if u.IsNatural() {
		return BuildNaturalUser(u), nil
	}
	return nil, apperror.ErrPrecondition("user has no kind")
}

func BuildNaturalUser(u *domain.User) resource.NaturalUser {
	res := resource.NaturalUser{
		ID:                 strOrEmpty(u.RemoteID),
		PersonType:         personTypeNatural,
		FirstName:          u.ResolvedFirstName(),
		LastName:           u.ResolvedLastName(),
		Email:              u.ResolvedEmail(),
		Address:            resource.NewAddress(strOrEmpty(u.Address)),
		Birthday:           epochSeconds(u.Birthday),
		Nationality:        u.Nationality,
		CountryOfResidence: u.CountryOfResidence,
	}
	if u.Natural != nil {
		res.Occupation = strOrEmpty(u.Natural.Occupation)
		res.IncomeRange = strOrEmpty(u.Natural.IncomeRange)
	}
	return res
}

// BuildLegalUser maps the shared user fields onto the legal representative.
func BuildLegalUser(u *domain.User) resource.LegalUser {
	details := u.Legal
	if details == nil {
		details = &domain.LegalDetails{}
	}
	return resource.LegalUser{
		ID:                                    strOrEmpty(u.RemoteID),
		PersonType:                            personTypeLegal,
		Email:                                 details.BusinessEmail,
		Name:                                  details.BusinessName,
		LegalPersonType:                       string(details.LegalPersonType),
		HeadquartersAddress:                   resource.NewAddress(strOrEmpty(details.HeadquartersAddress)),
		LegalRepresentativeFirstName:          strOrEmpty(u.FirstName),
		LegalRepresentativeLastName:           strOrEmpty(u.LastName),
		LegalRepresentativeAddress:            resource.NewAddress(strOrEmpty(u.Address)),
		LegalRepresentativeEmail:              strOrEmpty(u.Email),
		LegalRepresentativeBirthday:           epochSeconds(u.Birthday),
		LegalRepresentativeNationality:        u.Nationality,
		LegalRepresentativeCountryOfResidence: u.CountryOfResidence,
	}
}

func BuildDocument(doc *domain.Document, owner *domain.User) (resource.Document, error) {
	userID, err := remoteID("user", owner.RemoteID)
	if err != nil {
		return resource.Document{}, err
	}
	docType, err := documentTypeToRemote(doc.Type)
	if err != nil {
		return resource.Document{}, apperror.Validation(err.Error())
	}
	return resource.Document{
		ID:     strOrEmpty(doc.RemoteID),
		UserID: userID,
		Type:   docType,
	}, nil
}

// BuildPage base64-encodes the page content for upload.
func BuildPage(doc *domain.Document, owner *domain.User, content []byte) (resource.Page, error) {
	userID, err := remoteID("user", owner.RemoteID)
	if err != nil {
		return resource.Page{}, err
	}
	docID, err := remoteID("document", doc.RemoteID)
	if err != nil {
		return resource.Page{}, err
	}
	return resource.Page{
		UserID:     userID,
		DocumentID: docID,
		File:       base64.StdEncoding.EncodeToString(content),
	}, nil
}

// BuildBankAccount populates exactly the fields of the account's shape.
// Unknown account types are rejected.
func BuildBankAccount(acct *domain.BankAccount, owner *domain.User) (resource.BankAccount, error) {
	userID, err := remoteID("user", owner.RemoteID)
	if err != nil {
		return resource.BankAccount{}, err
	}
	res := resource.BankAccount{
		ID:           strOrEmpty(acct.RemoteID),
		UserID:       userID,
		Type:         string(acct.AccountType),
		OwnerName:    owner.AccountName(),
		OwnerAddress: resource.NewAddress(acct.Address),
	}

	switch acct.AccountType {
	case domain.BankAccountIBAN:
		res.IBAN = strOrEmpty(acct.IBAN)
		res.BIC = strOrEmpty(acct.BIC)
	case domain.BankAccountUS:
		res.ABA = strOrEmpty(acct.ABA)
		res.DepositAccountType = string(acct.DepositAccountType)
		res.AccountNumber = strOrEmpty(acct.AccountNumber)
	case domain.BankAccountOther:
		res.AccountNumber = strOrEmpty(acct.AccountNumber)
		res.BIC = strOrEmpty(acct.BIC)
		res.Country = strOrEmpty(acct.Country)
	default:
		return resource.BankAccount{}, apperror.ErrUnsupportedAccountType(string(acct.AccountType))
	}
	return res, nil
}

func BuildWallet(w *domain.Wallet, owner *domain.User) (resource.Wallet, error) {
	userID, err := remoteID("user", owner.RemoteID)
	if err != nil {
		return resource.Wallet{}, err
	}
	return resource.Wallet{
		ID:          strOrEmpty(w.RemoteID),
		Owners:      []string{userID},
		Description: strOrEmpty(w.Description),
		Currency:    currencyOrDefault(w.Currency),
	}, nil
}

// BuildPayIn dispatches on the payment kind. card is only read for card
// pay-ins and may be nil otherwise.
func BuildPayIn(p *domain.PayIn, author *domain.User, wallet *domain.Wallet, card *domain.Card) (resource.Resource, error) {
	switch p.Kind {
	case domain.PaymentCard:
		return BuildDirectPayIn(p, author, wallet, card)
	case domain.PaymentBankWire:
		return BuildBankWirePayIn(p, author, wallet)
	default:
		return nil, apperror.ErrPrecondition("unknown pay-in payment type " + string(p.Kind))
	}
}

func BuildDirectPayIn(p *domain.PayIn, author *domain.User, wallet *domain.Wallet, card *domain.Card) (resource.DirectPayIn, error) {
	authorID, err := remoteID("user", author.RemoteID)
	if err != nil {
		return resource.DirectPayIn{}, err
	}
	walletID, err := remoteID("wallet", wallet.RemoteID)
	if err != nil {
		return resource.DirectPayIn{}, err
	}
	if card == nil {
		return resource.DirectPayIn{}, apperror.ErrPrecondition("card pay-in has no card")
	}
	cardID, err := remoteID("card", card.RemoteID)
	if err != nil {
		return resource.DirectPayIn{}, err
	}
	return resource.DirectPayIn{
		AuthorID:            authorID,
		CreditedWalletID:    walletID,
		DebitedFunds:        money.ToMinorUnits(p.DebitedFunds),
		Fees:                money.ToMinorUnits(p.Fees),
		CardID:              cardID,
		SecureMode:          secureModeDefault,
		SecureModeReturnURL: strOrEmpty(p.SecureModeReturnURL),
		PaymentType:         paymentTypeCard,
	}, nil
}

func BuildBankWirePayIn(p *domain.PayIn, author *domain.User, wallet *domain.Wallet) (resource.BankWirePayIn, error) {
	authorID, err := remoteID("user", author.RemoteID)
	if err != nil {
		return resource.BankWirePayIn{}, err
	}
	walletID, err := remoteID("wallet", wallet.RemoteID)
	if err != nil {
		return resource.BankWirePayIn{}, err
	}
	return resource.BankWirePayIn{
		AuthorID:             authorID,
		CreditedWalletID:     walletID,
		DeclaredDebitedFunds: money.ToMinorUnits(p.DebitedFunds),
		DeclaredFees:         money.ToMinorUnits(p.Fees),
		PaymentType:          paymentTypeBankWire,
	}, nil
}

func BuildPayOut(p *domain.PayOut, author *domain.User, wallet *domain.Wallet, acct *domain.BankAccount) (resource.BankWirePayOut, error) {
	authorID, err := remoteID("user", author.RemoteID)
	if err != nil {
		return resource.BankWirePayOut{}, err
	}
	walletID, err := remoteID("wallet", wallet.RemoteID)
	if err != nil {
		return resource.BankWirePayOut{}, err
	}
	acctID, err := remoteID("bank account", acct.RemoteID)
	if err != nil {
		return resource.BankWirePayOut{}, err
	}
	return resource.BankWirePayOut{
		ID:              strOrEmpty(p.RemoteID),
		AuthorID:        authorID,
		DebitedWalletID: walletID,
		DebitedFunds:    money.ToMinorUnits(p.DebitedFunds),
		Fees:            money.ToMinorUnits(p.Fees),
		BankAccountID:   acctID,
		BankWireRef:     strOrEmpty(p.BankWireRef),
	}, nil
}

// TransferParties are the two wallets of a transfer and their owners.
// The debited wallet's owner is the author.
type TransferParties struct {
	DebitedWallet  *domain.Wallet
	DebitedOwner   *domain.User
	CreditedWallet *domain.Wallet
	CreditedOwner  *domain.User
}

func BuildTransfer(t *domain.Transfer, parties TransferParties) (resource.Transfer, error) {
	authorID, err := remoteID("debited wallet owner", parties.DebitedOwner.RemoteID)
	if err != nil {
		return resource.Transfer{}, err
	}
	creditedUserID, err := remoteID("credited wallet owner", parties.CreditedOwner.RemoteID)
	if err != nil {
		return resource.Transfer{}, err
	}
	debitedWalletID, err := remoteID("debited wallet", parties.DebitedWallet.RemoteID)
	if err != nil {
		return resource.Transfer{}, err
	}
	creditedWalletID, err := remoteID("credited wallet", parties.CreditedWallet.RemoteID)
	if err != nil {
		return resource.Transfer{}, err
	}
	return resource.Transfer{
		ID:               strOrEmpty(t.RemoteID),
		AuthorID:         authorID,
		CreditedUserID:   creditedUserID,
		DebitedFunds:     money.ToMinorUnits(t.DebitedFunds),
		Fees:             money.ToMinorUnits(t.Fees),
		DebitedWalletID:  debitedWalletID,
		CreditedWalletID: creditedWalletID,
	}, nil
}

func BuildRefund(author *domain.User, payIn *domain.PayIn) (resource.PayInRefund, error) {
	authorID, err := remoteID("user", author.RemoteID)
	if err != nil {
		return resource.PayInRefund{}, err
	}
	payInID, err := remoteID("pay-in", payIn.RemoteID)
	if err != nil {
		return resource.PayInRefund{}, err
	}
	return resource.PayInRefund{PayInID: payInID, AuthorID: authorID}, nil
}

func BuildCardRegistration(reg *domain.CardRegistration, owner *domain.User) (resource.CardRegistration, error) {
	userID, err := remoteID("user", owner.RemoteID)
	if err != nil {
		return resource.CardRegistration{}, err
	}
	return resource.CardRegistration{
		ID:       strOrEmpty(reg.RemoteID),
		UserID:   userID,
		Currency: currencyOrDefault(reg.Currency),
	}, nil
}

// epochSeconds renders a calendar date as the Unix time of its UTC
// midnight. Sub-second precision is floored away.
func epochSeconds(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	y, m, d := t.Date()
	secs := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix()
	return &secs
}

func remoteID(entity string, id *string) (string, error) {
	if id == nil || *id == "" {
		return "", apperror.ErrMissingRemoteID(entity)
	}
	return *id, nil
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func currencyOrDefault(c string) string {
	if c == "" {
		return money.DefaultCurrency
	}
	return c
}
