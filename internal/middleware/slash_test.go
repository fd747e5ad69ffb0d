package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quillsign/quillsign/internal/middleware"
)

func TestTrimSlash(t *testing.T) {
	handler := middleware.TrimSlash()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name         string
		path         string
		wantStatus   int
		wantLocation string
	}{
		{"trailing slash redirects", "/api/documents/", http.StatusMovedPermanently, "/api/documents"},
		{"query string preserved", "/api/documents/?page=2", http.StatusMovedPermanently, "/api/documents?page=2"},
		{"canonical path passes through", "/api/documents", http.StatusOK, ""},
		{"root path passes through", "/", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest("GET", tt.path, nil))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if got := w.Header().Get("Location"); got != tt.wantLocation {
				t.Errorf("Location = %q, want %q", got, tt.wantLocation)
			}
		})
	}
}
