package domain

import (
	"time"

	"github.com/google/uuid"
)

// DocumentType is the KYC document kind. Values are the stored codes.
type DocumentType string

const (
	DocumentIdentityProof          DocumentType = "IP"
	DocumentRegistrationProof      DocumentType = "RP"
	DocumentShareholderDeclaration DocumentType = "SD"
	DocumentArticlesOfAssociation  DocumentType = "AA"
)

// DocumentTypes lists every type in the canonical order used when
// reporting required documents.
var DocumentTypes = []DocumentType{
	DocumentIdentityProof,
	DocumentRegistrationProof,
	DocumentShareholderDeclaration,
	DocumentArticlesOfAssociation,
}

// DocumentStatus is the processor-side review state of a document.
// A nil status means the document has not been created remotely yet.
type DocumentStatus string

const (
	DocumentCreated         DocumentStatus = "C"
	DocumentValidationAsked DocumentStatus = "A"
	DocumentValidated       DocumentStatus = "V"
	DocumentRefused         DocumentStatus = "R"
)

// Document is an identity document uploaded for a user. Its status is
// copied from the processor; the only transition computed locally is
// CREATED -> VALIDATION_ASKED.
type Document struct {
	ID                   uuid.UUID       `json:"id"`
	RemoteID             *string         `json:"remote_id,omitempty"`
	UserID               uuid.UUID       `json:"user_id"`
	Type                 DocumentType    `json:"type"`
	Status               *DocumentStatus `json:"status"`
	RefusedReasonType    *string         `json:"refused_reason_type,omitempty"`
	RefusedReasonMessage *string         `json:"refused_reason_message,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// NewDocument returns a freshly uploaded document with no status.
func NewDocument(userID uuid.UUID, t DocumentType) *Document {
	now := time.Now().UTC()
	return &Document{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      t,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (d *Document) HasRemoteID() bool { return hasRemoteID(d.RemoteID) }

// HasStatus reports whether the document is in status s. A nil status
// never matches.
func (d *Document) HasStatus(s DocumentStatus) bool {
	return d.Status != nil && *d.Status == s
}

// IsPending reports whether the document has no status yet.
func (d *Document) IsPending() bool { return d.Status == nil }

// CanAskForValidation is true only in the CREATED state.
func (d *Document) CanAskForValidation() bool {
	return d.HasStatus(DocumentCreated)
}

// StatusString renders the status for logs and errors; "null" when unset.
func (d *Document) StatusString() string {
	if d.Status == nil {
		return "null"
	}
	return string(*d.Status)
}

// Page is one uploaded page of a Document. Pages are write-once.
type Page struct {
	ID         uuid.UUID `json:"id"`
	DocumentID uuid.UUID `json:"document_id"`
	FileURL    string    `json:"file_url"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewPage returns a page referencing an externally stored file.
func NewPage(documentID uuid.UUID, fileURL string) *Page {
	return &Page{
		ID:         uuid.New(),
		DocumentID: documentID,
		FileURL:    fileURL,
		CreatedAt:  time.Now().UTC(),
	}
}
