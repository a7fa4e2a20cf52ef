package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserKind discriminates the two user variants known to the processor.
type UserKind string

const (
	UserKindNatural UserKind = "NATURAL"
	UserKindLegal   UserKind = "LEGAL"
)

// LegalPersonType is the sub-type of a legal user.
type LegalPersonType string

const (
	LegalPersonBusiness     LegalPersonType = "BUSINESS"
	LegalPersonOrganization LegalPersonType = "ORGANIZATION"
	LegalPersonSoletrader   LegalPersonType = "SOLETRADER"
)

// Account is the application account a processor user is attached to.
// Its names and email are used when the user record leaves them empty.
type Account struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}

// NaturalDetails holds the fields only natural users carry.
type NaturalDetails struct {
	Occupation  *string `json:"occupation,omitempty"`
	IncomeRange *string `json:"income_range,omitempty"`
}

// LegalDetails holds the fields only legal users carry. The shared
// first/last name, email, birthday, nationality, residence and address
// of the User describe the legal representative.
type LegalDetails struct {
	LegalPersonType     LegalPersonType `json:"legal_person_type"`
	BusinessName        string          `json:"business_name"`
	BusinessEmail       string          `json:"business_email"`
	HeadquartersAddress *string         `json:"headquarters_address,omitempty"`
}

// User is the local mirror of a processor user.
type User struct {
	ID                 uuid.UUID  `json:"id"`
	RemoteID           *string    `json:"remote_id,omitempty"`
	Kind               UserKind   `json:"type"`
	Account            Account    `json:"account"`
	FirstName          *string    `json:"first_name,omitempty"`
	LastName           *string    `json:"last_name,omitempty"`
	Email              *string    `json:"email,omitempty"`
	Birthday           *time.Time `json:"birthday,omitempty"`
	Nationality        string     `json:"nationality"`
	CountryOfResidence string     `json:"country_of_residence"`
	Address            *string    `json:"address,omitempty"`

	Natural *NaturalDetails `json:"natural,omitempty"`
	Legal   *LegalDetails   `json:"legal,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewNaturalUser returns a natural user. The kind is fixed here and never
// changes afterwards.
func NewNaturalUser(account Account, details NaturalDetails) *User {
	now := time.Now().UTC()
	return &User{
		ID:        uuid.New(),
		Kind:      UserKindNatural,
		Account:   account,
		Natural:   &details,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewLegalUser returns a legal user.
func NewLegalUser(account Account, details LegalDetails) *User {
	now := time.Now().UTC()
	return &User{
		ID:        uuid.New(),
		Kind:      UserKindLegal,
		Account:   account,
		Legal:     &details,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsNatural reports whether the user is a natural person.
func (u *User) IsNatural() bool { return u.Kind == UserKindNatural }

// IsLegal reports whether the user is a legal person.
func (u *User) IsLegal() bool { return u.Kind == UserKindLegal }

// HasRemoteID reports whether the user was already created remotely.
func (u *User) HasRemoteID() bool { return hasRemoteID(u.RemoteID) }

// ResolvedFirstName falls back to the linked account.
func (u *User) ResolvedFirstName() string {
	if s := deref(u.FirstName); s != "" {
		return s
	}
	return u.Account.FirstName
}

// ResolvedLastName falls back to the linked account.
func (u *User) ResolvedLastName() string {
	if s := deref(u.LastName); s != "" {
		return s
	}
	return u.Account.LastName
}

// ResolvedEmail falls back to the linked account.
func (u *User) ResolvedEmail() string {
	if s := deref(u.Email); s != "" {
		return s
	}
	return u.Account.Email
}

// DisplayName is the full name shown for the user, business name first
// for legal users.
func (u *User) DisplayName() string {
	if u.Legal != nil && u.Legal.BusinessName != "" {
		return u.Legal.BusinessName
	}
	return strings.TrimSpace(u.ResolvedFirstName() + " " + u.ResolvedLastName())
}

// AccountName is the full name of the linked application account.
func (u *User) AccountName() string {
	return strings.TrimSpace(u.Account.FirstName + " " + u.Account.LastName)
}

func hasRemoteID(id *string) bool {
	return id != nil && *id != ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func present(s *string) bool {
	return strings.TrimSpace(deref(s)) != ""
}
