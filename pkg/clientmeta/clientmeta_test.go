package clientmeta_test

import (
	"net/http/httptest"
	"testing"

	"github.com/quillsign/quillsign/pkg/clientmeta"
)

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		userAgent  string
		wantIP     string
		wantUA     string
	}{
		{
			name:       "forwarded chain wins over peer",
			remoteAddr: "10.0.0.1:1234",
			forwarded:  "203.0.113.7, 10.0.0.1",
			userAgent:  "curl/8.0",
			wantIP:     "203.0.113.7",
			wantUA:     "curl/8.0",
		},
		{
			name:       "peer address without forwarding",
			remoteAddr: "192.168.1.5:5555",
			wantIP:     "192.168.1.5",
			wantUA:     "unknown",
		},
		{
			name:   "nothing known",
			wantIP: "unknown",
			wantUA: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			r.Header.Set("User-Agent", tt.userAgent)

			meta := clientmeta.FromRequest(r)

			if meta.IPAddress != tt.wantIP {
				t.Errorf("IPAddress = %q, want %q", meta.IPAddress, tt.wantIP)
			}
			if meta.UserAgent != tt.wantUA {
				t.Errorf("UserAgent = %q, want %q", meta.UserAgent, tt.wantUA)
			}
		})
	}
}

func TestOriginFromRequest(t *testing.T) {
	tests := []struct {
		name    string
		origin  string
		referer string
		want    string
	}{
		{"origin header wins", "https://app.example.com", "https://other.example.com/page", "https://app.example.com"},
		{"trailing slash stripped", "https://app.example.com/", "", "https://app.example.com"},
		{"referer origin when no origin header", "", "https://app.example.com/documents/1", "https://app.example.com"},
		{"fallback when neither present", "", "", "http://localhost:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/", nil)
			if tt.origin != "" {
				r.Header.Set("Origin", tt.origin)
			}
			if tt.referer != "" {
				r.Header.Set("Referer", tt.referer)
			}

			got := clientmeta.OriginFromRequest(r, "http://localhost:8080")
			if got != tt.want {
				t.Errorf("OriginFromRequest() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSigningURL(t *testing.T) {
	tests := []struct {
		name   string
		origin string
		token  string
		want   string
	}{
		{"plain origin", "https://app.example.com", "abc123", "https://app.example.com/sign/abc123"},
		{"trailing slash normalized", "https://app.example.com/", "abc123", "https://app.example.com/sign/abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clientmeta.SigningURL(tt.origin, tt.token); got != tt.want {
				t.Errorf("SigningURL() = %q, want %q", got, tt.want)
			}
		})
	}
}
