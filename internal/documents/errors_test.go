package documents_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/quillsign/quillsign/internal/documents"
)

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", documents.ErrNotFound, http.StatusNotFound},
		{"duplicate", documents.ErrDuplicate, http.StatusConflict},
		{"not owner", documents.ErrNotOwner, http.StatusForbidden},
		{"not draft", documents.ErrNotDraft, http.StatusConflict},
		{"no signers", documents.ErrNoSigners, http.StatusUnprocessableEntity},
		{"no fields", documents.ErrNoFields, http.StatusUnprocessableEntity},
		{"file too large", documents.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{"invalid file", documents.ErrInvalidFile, http.StatusBadRequest},
		{"not pdf", documents.ErrNotPDF, http.StatusBadRequest},
		{"wrapped not found", fmt.Errorf("find: %w", documents.ErrNotFound), http.StatusNotFound},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := documents.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
