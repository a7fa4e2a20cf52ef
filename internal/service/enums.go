package service

import (
	"fmt"

	"mangopay-sync/internal/core/domain"
)

var documentTypesToRemote = map[domain.DocumentType]string{
	domain.DocumentIdentityProof:          "IDENTITY_PROOF",
	domain.DocumentRegistrationProof:      "REGISTRATION_PROOF",
	domain.DocumentShareholderDeclaration: "SHAREHOLDER_DECLARATION",
	domain.DocumentArticlesOfAssociation:  "ARTICLES_OF_ASSOCIATION",
}

var documentStatusesToRemote = map[domain.DocumentStatus]string{
	domain.DocumentCreated:         "CREATED",
	domain.DocumentValidationAsked: "VALIDATION_ASKED",
	domain.DocumentValidated:       "VALIDATED",
	domain.DocumentRefused:         "REFUSED",
}

var documentStatusesFromRemote = invert(documentStatusesToRemote)

var transactionStatusesFromRemote = map[string]domain.TransactionStatus{
	"CREATED":   domain.TransactionCreated,
	"SUCCEEDED": domain.TransactionSucceeded,
	"FAILED":    domain.TransactionFailed,
}

const (
	personTypeNatural = "NATURAL"
	personTypeLegal   = "LEGAL"

	paymentTypeCard     = "CARD"
	paymentTypeBankWire = "BANK_WIRE"

	secureModeDefault = "DEFAULT"

	cardValidityValid   = "VALID"
	cardValidityUnknown = "UNKNOWN"
)

// documentTypeToRemote rejects codes outside the fixed enumeration.
func documentTypeToRemote(t domain.DocumentType) (string, error) {
	v, ok := documentTypesToRemote[t]
	if !ok {
		return "", fmt.Errorf("unknown document type %q", t)
	}
	return v, nil
}

// documentStatusFromRemote maps a processor status to the stored code.
// An empty status maps to nil.
func documentStatusFromRemote(s string) (*domain.DocumentStatus, error) {
	if s == "" {
		return nil, nil
	}
	v, ok := documentStatusesFromRemote[s]
	if !ok {
		return nil, fmt.Errorf("unknown document status %q", s)
	}
	return &v, nil
}

// transactionStatusFromRemote maps a money movement status. An empty
// status maps to nil.
func transactionStatusFromRemote(s string) (*domain.TransactionStatus, error) {
	if s == "" {
		return nil, nil
	}
	v, ok := transactionStatusesFromRemote[s]
	if !ok {
		return nil, fmt.Errorf("unknown transaction status %q", s)
	}
	return &v, nil
}

// cardValidityFromRemote keeps the tri-state: UNKNOWN (or empty) is nil.
func cardValidityFromRemote(s string) *bool {
	if s == "" || s == cardValidityUnknown {
		return nil
	}
	valid := s == cardValidityValid
	return &valid
}

func invert[K, V comparable](m map[K]V) map[V]K {
	out := make(map[V]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}
