package signers

import (
	"errors"
	"net/http"
)

// Domain errors for signer operations.
var (
	ErrNotFound         = errors.New("signer not found")
	ErrDuplicate        = errors.New("signer order conflict")
	ErrDocumentNotFound = errors.New("document not found")
	ErrNotOwner         = errors.New("document belongs to a different owner")
	ErrNotDraft         = errors.New("document is no longer a draft")
	ErrInvalid          = errors.New("invalid signer")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrDocumentNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrNotOwner) {
		return http.StatusForbidden
	}
	if errors.Is(err, ErrNotDraft) || errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalid) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
