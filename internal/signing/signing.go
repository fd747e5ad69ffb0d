// Package signing implements the token-addressed signer protocol: resolving
// a signing session, submitting field values and a signature, and declining.
// The access token is the sole credential; no other identity is consulted.
package signing

import (
	"time"

	"github.com/google/uuid"
	"github.com/quillsign/quillsign/internal/documents"
	"github.com/quillsign/quillsign/internal/fields"
	"github.com/quillsign/quillsign/internal/signers"
)

// View is the payload a signer sees when resolving their token: their own
// signer record, the document being signed, and every field placed on it.
type View struct {
	Signer   signers.Signer `json:"signer"`
	Document ViewDocument   `json:"document"`
	Fields   []fields.Field `json:"fields"`
}

// ViewDocument is the document as exposed to a signer. Owner-only metadata
// such as the storage key stays out of the signing surface.
type ViewDocument struct {
	ID          uuid.UUID        `json:"id"`
	Title       string           `json:"title"`
	Filename    string           `json:"filename"`
	ContentType string           `json:"content_type"`
	PageCount   *int             `json:"page_count,omitempty"`
	Status      documents.Status `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
}

// FieldValue carries a submitted value for a single field.
type FieldValue struct {
	ID    uuid.UUID `json:"id"`
	Value *string   `json:"value"`
}

// SubmitCommand contains the field values submitted with a signature.
type SubmitCommand struct {
	Fields []FieldValue `json:"fields"`
}

// SubmitResult reports whether the submission completed the document.
type SubmitResult struct {
	Completed bool `json:"completed"`
}

// DeclineCommand contains the optional reason a signer declined.
type DeclineCommand struct {
	Reason *string `json:"reason,omitempty"`
}
