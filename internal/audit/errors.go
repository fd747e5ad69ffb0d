package audit

import (
	"errors"
	"net/http"
)

// Domain errors for audit operations.
var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrNotOwner         = errors.New("document belongs to a different owner")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrDocumentNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrNotOwner) {
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}
