package signing_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/quillsign/quillsign/internal/signing"
)

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"token not found", signing.ErrTokenNotFound, http.StatusNotFound},
		{"already signed", signing.ErrAlreadySigned, http.StatusConflict},
		{"already declined", signing.ErrAlreadyDeclined, http.StatusConflict},
		{"invalid field", signing.ErrInvalidField, http.StatusBadRequest},
		{"missing required", signing.ErrMissingRequired, http.StatusUnprocessableEntity},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := signing.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
