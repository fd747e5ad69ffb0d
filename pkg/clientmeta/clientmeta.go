// Package clientmeta captures the request-side context recorded with audit
// entries and signatures: client network origin, user agent, and the origin
// used to build externally visible signing links.
package clientmeta

import (
	"net"
	"net/http"
	"strings"
)

// Unknown is recorded when a value cannot be determined from the request.
const Unknown = "unknown"

// Meta holds the client address and agent string captured from a request.
type Meta struct {
	IPAddress string
	UserAgent string
}

// FromRequest extracts client metadata from the request, preferring the
// X-Forwarded-For chain over the direct peer address. Missing values are
// recorded as "unknown".
func FromRequest(r *http.Request) Meta {
	return Meta{
		IPAddress: clientIP(r),
		UserAgent: userAgent(r),
	}
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		// first hop is the originating client
		if ip := strings.TrimSpace(strings.Split(fwd, ",")[0]); ip != "" {
			return ip
		}
	}

	if r.RemoteAddr != "" {
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			return host
		}
		return r.RemoteAddr
	}

	return Unknown
}

func userAgent(r *http.Request) string {
	if ua := r.Header.Get("User-Agent"); ua != "" {
		return ua
	}
	return Unknown
}

// OriginFromRequest resolves the origin for signing links: the declared
// Origin header, then the Referer with its path stripped, then fallback.
func OriginFromRequest(r *http.Request, fallback string) string {
	if origin := r.Header.Get("Origin"); origin != "" {
		return strings.TrimSuffix(origin, "/")
	}

	if referer := r.Header.Get("Referer"); referer != "" {
		if origin := refererOrigin(referer); origin != "" {
			return origin
		}
	}

	return fallback
}

// SigningURL builds the externally visible signing link for a token.
func SigningURL(origin, token string) string {
	return strings.TrimSuffix(origin, "/") + "/sign/" + token
}

func refererOrigin(referer string) string {
	rest := referer
	scheme := ""
	if idx := strings.Index(referer, "://"); idx >= 0 {
		scheme = referer[:idx+3]
		rest = referer[idx+3:]
	}

	if idx := strings.IndexByte(rest, '/'); idx >= 0 {
		rest = rest[:idx]
	}
	if rest == "" {
		return ""
	}

	return scheme + rest
}
