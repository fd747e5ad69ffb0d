// Package audit maintains the append-only event trail for documents. Every
// lifecycle transition records who acted, what happened, and the client
// context it happened from. Entries are never updated or deleted; they are
// removed only when their document is deleted.
package audit

import (
	"time"

	"github.com/google/uuid"
)

// Actions recorded in the audit trail.
const (
	ActionSent      = "Document sent for signing"
	ActionViewed    = "Document viewed"
	ActionSigned    = "Document signed"
	ActionCompleted = "Document completed"
	ActionDeclined  = "Document declined"
)

// Entry represents a single recorded event on a document.
type Entry struct {
	ID         uuid.UUID  `json:"id"`
	DocumentID uuid.UUID  `json:"document_id"`
	SignerID   *uuid.UUID `json:"signer_id,omitempty"`
	Action     string     `json:"action"`
	Details    *string    `json:"details,omitempty"`
	IPAddress  *string    `json:"ip_address,omitempty"`
	UserAgent  *string    `json:"user_agent,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// AppendCommand contains the data recorded for a new audit entry.
type AppendCommand struct {
	DocumentID uuid.UUID
	SignerID   *uuid.UUID
	Action     string
	Details    *string
	IPAddress  *string
	UserAgent  *string
}
