package signing

import (
	"errors"
	"net/http"
)

// Domain errors for signing operations.
var (
	ErrTokenNotFound   = errors.New("invalid signing token")
	ErrAlreadySigned   = errors.New("already signed")
	ErrAlreadyDeclined = errors.New("already declined")
	ErrInvalidField    = errors.New("field does not belong to this signing session")
	ErrMissingRequired = errors.New("required fields are missing values")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrTokenNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrAlreadySigned) || errors.Is(err, ErrAlreadyDeclined) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidField) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrMissingRequired) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
