package fields

import (
	"errors"
	"net/http"
)

// Domain errors for field operations.
var (
	ErrNotFound         = errors.New("field not found")
	ErrDuplicate        = errors.New("field already exists")
	ErrDocumentNotFound = errors.New("document not found")
	ErrSignerNotFound   = errors.New("signer does not belong to the document")
	ErrNotOwner         = errors.New("document belongs to a different owner")
	ErrNotDraft         = errors.New("document is no longer a draft")
	ErrInvalid          = errors.New("invalid field")
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
	if errors.Is(err, ErrInvalid) || errors.Is(err, ErrSignerNotFound) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
