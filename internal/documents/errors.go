package documents

import (
	"errors"
	"net/http"
)

// Domain errors for document operations.
var (
	ErrNotFound     = errors.New("document not found")
	ErrDuplicate    = errors.New("document storage key already exists")
	ErrNotOwner     = errors.New("document belongs to a different owner")
	ErrNotDraft     = errors.New("document is no longer a draft")
	ErrNoSigners    = errors.New("document has no signers")
	ErrNoFields     = errors.New("document has no fields")
	ErrFileTooLarge = errors.New("file exceeds maximum upload size")
	ErrInvalidFile  = errors.New("invalid file")
	ErrNotPDF       = errors.New("only PDF documents are supported")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrNotOwner) {
		return http.StatusForbidden
	}
	if errors.Is(err, ErrNotDraft) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrNoSigners) || errors.Is(err, ErrNoFields) {
		return http.StatusUnprocessableEntity
	}
	if errors.Is(err, ErrFileTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.Is(err, ErrInvalidFile) || errors.Is(err, ErrNotPDF) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
