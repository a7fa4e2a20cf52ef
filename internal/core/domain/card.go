package domain

import (
	"time"

	"github.com/google/uuid"
)

// Card is a tokenized card. Raw card data never reaches this system.
// IsValid is tri-state: nil means the processor reports UNKNOWN.
type Card struct {
	ID             uuid.UUID `json:"id"`
	RemoteID       *string   `json:"remote_id,omitempty"`
	ExpirationDate *string   `json:"expiration_date,omitempty"` // MMYY
	Alias          *string   `json:"alias,omitempty"`
	IsActive       bool      `json:"is_active"`
	IsValid        *bool     `json:"is_valid"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewCard returns an empty card awaiting tokenization.
func NewCard() *Card {
	now := time.Now().UTC()
	return &Card{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
}

func (c *Card) HasRemoteID() bool { return hasRemoteID(c.RemoteID) }

// CardRegistration drives client-side card tokenization for a user and
// owns exactly one Card.
type CardRegistration struct {
	ID        uuid.UUID  `json:"id"`
	RemoteID  *string    `json:"remote_id,omitempty"`
	UserID    uuid.UUID  `json:"user_id"`
	CardID    *uuid.UUID `json:"card_id,omitempty"`
	Currency  string     `json:"currency"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (r *CardRegistration) HasRemoteID() bool { return hasRemoteID(r.RemoteID) }

// PreregistrationData is handed to the client-side card capture step.
type PreregistrationData struct {
	PreregistrationData string `json:"preregistrationData"`
	AccessKey           string `json:"accessKey"`
	CardRegistrationURL string `json:"cardRegistrationURL"`
}
