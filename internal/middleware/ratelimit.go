package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/quillsign/quillsign/internal/config"
	"github.com/quillsign/quillsign/pkg/clientmeta"
	"github.com/quillsign/quillsign/pkg/handlers"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter applies a per-client token bucket to the signer-facing
// surface. Signing tokens are the only credential there, so the limiter
// damps brute-force probing of the token space.
type RateLimiter struct {
	limit rate.Limit
	burst int

	mu      sync.Mutex
	clients map[string]*clientLimiter

	logger *slog.Logger
	stop   chan struct{}
}

// NewRateLimiter creates a rate limiter from the signing configuration and
// starts a background sweep of idle client entries.
func NewRateLimiter(cfg *config.SigningConfig, logger *slog.Logger) *RateLimiter {
	rl := &RateLimiter{
		limit:   rate.Limit(float64(cfg.RatePerMinute) / 60.0),
		burst:   cfg.RateBurst,
		clients: make(map[string]*clientLimiter),
		logger:  logger.With("system", "ratelimit"),
		stop:    make(chan struct{}),
	}

	go rl.sweep()

	return rl
}

// Stop terminates the background sweep goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

// Middleware returns the rate limiting middleware keyed by client address.
func (rl *RateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			meta := clientmeta.FromRequest(r)

			if !rl.allow(meta.IPAddress) {
				rl.logger.Warn("rate limit exceeded", "client", meta.IPAddress, "path", r.URL.Path)
				w.Header().Set("Retry-After", "60")
				handlers.RespondJSON(w, http.StatusTooManyRequests, map[string]string{
					"error": "too many requests",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) allow(client string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, ok := rl.clients[client]
	if !ok {
		entry = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[client] = entry
	}
	entry.lastSeen = time.Now()

	return entry.limiter.Allow()
}

func (rl *RateLimiter) sweep() {
	ticker := time.NewTicker(limiterIdleTTL)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-limiterIdleTTL)
			rl.mu.Lock()
			for client, entry := range rl.clients {
				if entry.lastSeen.Before(cutoff) {
					delete(rl.clients, client)
				}
			}
			rl.mu.Unlock()
		}
	}
}
