// Package signers manages the recipients attached to a document. Signers
// are added while the document is a draft, receive an access token when the
// document is sent, and progress pending -> sent -> viewed -> signed, with
// declined as the terminal alternative.
package signers

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the signing state of an individual signer.
type Status string

// Signer states. Transitions are forward-only; signed and declined are
// terminal.
const (
	StatusPending  Status = "pending"
	StatusSent     Status = "sent"
	StatusViewed   Status = "viewed"
	StatusSigned   Status = "signed"
	StatusDeclined Status = "declined"
)

// Signer represents a recipient expected to sign a document. The access
// token is the signer's sole credential and is never serialized in
// owner-facing responses.
type Signer struct {
	ID         uuid.UUID  `json:"id"`
	DocumentID uuid.UUID  `json:"document_id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	SignOrder  int        `json:"sign_order"`
	Status     Status     `json:"status"`
	Token      *string    `json:"-"`
	SignedAt   *time.Time `json:"signed_at,omitempty"`
	IPAddress  *string    `json:"ip_address,omitempty"`
	UserAgent  *string    `json:"user_agent,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// AddCommand contains the data required to attach a signer to a document.
type AddCommand struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
