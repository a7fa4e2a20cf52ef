package domain

import (
	"time"

	"github.com/google/uuid"
)

// Wallet is the local mirror of a processor wallet. The balance is never
// stored locally; it is always fetched live.
type Wallet struct {
	ID          uuid.UUID `json:"id"`
	RemoteID    *string   `json:"remote_id,omitempty"`
	UserID      uuid.UUID `json:"user_id"`
	Currency    string    `json:"currency"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (w *Wallet) HasRemoteID() bool { return hasRemoteID(w.RemoteID) }
