// Package fields manages the signature fields placed on document pages.
// Positions are percentages of the rendered page, so a placement is
// resolution-independent; dimensions are pixels at the reference render
// size. Fields are placed and removed while the document is a draft;
// signers fill values during signing.
package fields

import (
	"time"

	"github.com/google/uuid"
)

// Type identifies the kind of input a field collects.
type Type string

// Supported field types.
const (
	TypeSignature Type = "signature"
	TypeInitials  Type = "initials"
	TypeDate      Type = "date"
	TypeText      Type = "text"
	TypeCheckbox  Type = "checkbox"
)

// Valid reports whether t is a supported field type.
func (t Type) Valid() bool {
	switch t {
	case TypeSignature, TypeInitials, TypeDate, TypeText, TypeCheckbox:
		return true
	}
	return false
}

// DefaultSize returns the default width and height for the field type,
// in pixels at the reference render size.
func (t Type) DefaultSize() (width, height float64) {
	switch t {
	case TypeCheckbox:
		return 30, 30
	case TypeSignature:
		return 200, 60
	default:
		return 200, 35
	}
}

// Field represents an input placed on a document page, optionally assigned
// to a specific signer.
type Field struct {
	ID         uuid.UUID  `json:"id"`
	DocumentID uuid.UUID  `json:"document_id"`
	SignerID   *uuid.UUID `json:"signer_id,omitempty"`
	Type       Type       `json:"field_type"`
	PageNumber int        `json:"page_number"`
	X          float64    `json:"x_position"`
	Y          float64    `json:"y_position"`
	Width      float64    `json:"width"`
	Height     float64    `json:"height"`
	Value      *string    `json:"value,omitempty"`
	Required   bool       `json:"required"`
	CreatedAt  time.Time  `json:"created_at"`
}

// PlaceCommand contains the data required to place a field on a document
// page. Width, height, and required fall back to type defaults when omitted.
type PlaceCommand struct {
	SignerID   *uuid.UUID `json:"signer_id,omitempty"`
	Type       Type       `json:"field_type"`
	PageNumber int        `json:"page_number"`
	X          float64    `json:"x_position"`
	Y          float64    `json:"y_position"`
	Width      *float64   `json:"width,omitempty"`
	Height     *float64   `json:"height,omitempty"`
	Required   *bool      `json:"required,omitempty"`
}
