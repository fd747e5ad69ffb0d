// Package documents provides the owner-facing document lifecycle: upload,
// management, and routing for signature. Documents move draft -> sent ->
// completed, with declined and expired as terminal alternatives.
package documents

import (
	"time"

	"github.com/google/uuid"
	"github.com/quillsign/quillsign/internal/fields"
	"github.com/quillsign/quillsign/internal/signers"
)

// Status represents the lifecycle state of a document.
type Status string

// Document lifecycle states. Draft documents are editable; sent documents
// are immutable and await signatures; completed, declined, and expired are
// terminal.
const (
	StatusDraft     Status = "draft"
	StatusSent      Status = "sent"
	StatusCompleted Status = "completed"
	StatusDeclined  Status = "declined"
	StatusExpired   Status = "expired"
)

// Document represents an uploaded document with routing metadata.
type Document struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Title       string    `json:"title"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	PageCount   *int      `json:"page_count,omitempty"`
	StorageKey  string    `json:"storage_key"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Detail is a document with its signers and placed fields.
type Detail struct {
	Document
	Signers []signers.Signer `json:"signers"`
	Fields  []fields.Field   `json:"fields"`
}

// CreateCommand contains the data required to create a new document.
// Data holds the raw file bytes to be stored.
type CreateCommand struct {
	OwnerID     uuid.UUID
	Title       string
	Filename    string
	ContentType string
	SizeBytes   int64
	PageCount   *int
	Data        []byte
}

// UpdateCommand contains the fields that can be modified on an existing
// document. Only the display title can be changed; the stored file is
// immutable.
type UpdateCommand struct {
	Title string `json:"title"`
}

// SigningLink pairs a signer with the URL that addresses their signing
// session.
type SigningLink struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	URL   string `json:"url"`
}

// SendResult reports the outcome of routing a document for signature.
type SendResult struct {
	Document     *Document     `json:"document"`
	SigningLinks []SigningLink `json:"signing_links"`
}
