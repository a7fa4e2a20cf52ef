package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction is a lifecycle operation triggered through the ops API.
type AuditAction string

const (
	AuditActionRegister         AuditAction = "REGISTER"
	AuditActionCreate           AuditAction = "CREATE"
	AuditActionUpdate           AuditAction = "UPDATE"
	AuditActionAskValidation    AuditAction = "ASK_VALIDATION"
	AuditActionUploadPage       AuditAction = "UPLOAD_PAGE"
	AuditActionSaveCard         AuditAction = "SAVE_CARD"
	AuditActionSaveRegistration AuditAction = "SAVE_REGISTRATION"
)

// AuditLog records who pushed which record to the processor.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	Operator     string      `json:"operator,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
