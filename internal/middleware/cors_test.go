package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quillsign/quillsign/internal/config"
	"github.com/quillsign/quillsign/internal/middleware"
)

func newCORSHandler(cfg *config.CORSConfig) http.Handler {
	return middleware.CORS(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
}

func TestCORS_AllowedOrigin(t *testing.T) {
	handler := newCORSHandler(&config.CORSConfig{
		Enabled:          true,
		Origins:          []string{"http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST"},
		AllowCredentials: true,
	})

	r := httptest.NewRequest("GET", "/api/documents", nil)
	r.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Allow-Origin = %q, want %q", got, "http://localhost:5173")
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); got != "GET, POST" {
		t.Errorf("Allow-Methods = %q, want %q", got, "GET, POST")
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("Allow-Credentials = %q, want %q", got, "true")
	}
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	handler := newCORSHandler(&config.CORSConfig{
		Enabled: true,
		Origins: []string{"http://localhost:5173"},
	})

	r := httptest.NewRequest("GET", "/api/documents", nil)
	r.Header.Set("Origin", "http://evil.example.com")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin = %q, want empty for unlisted origin", got)
	}
}

func TestCORS_Preflight(t *testing.T) {
	handler := newCORSHandler(&config.CORSConfig{
		Enabled: true,
		Origins: []string{"http://localhost:5173"},
	})

	r := httptest.NewRequest("OPTIONS", "/api/documents", nil)
	r.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Errorf("preflight status = %d, want 200", w.Code)
	}
}

func TestCORS_Disabled(t *testing.T) {
	handler := newCORSHandler(&config.CORSConfig{Enabled: false})

	r := httptest.NewRequest("GET", "/api/documents", nil)
	r.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin = %q, want empty when disabled", got)
	}
}
