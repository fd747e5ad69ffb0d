package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	// EnvSigningDefaultOrigin overrides the fallback origin for signing links.
	EnvSigningDefaultOrigin = "SIGNING_DEFAULT_ORIGIN"

	// EnvSigningRatePerMinute overrides the signer-surface rate limit.
	EnvSigningRatePerMinute = "SIGNING_RATE_PER_MINUTE"

	// EnvSigningRateBurst overrides the signer-surface rate limit burst.
	EnvSigningRateBurst = "SIGNING_RATE_BURST"
)

// SigningConfig contains signer-facing surface configuration: the fallback
// origin used when a send request declares none, and the per-client rate
// limit applied to token-addressed endpoints.
type SigningConfig struct {
	DefaultOrigin string `toml:"default_origin"`
	RatePerMinute int    `toml:"rate_per_minute"`
	RateBurst     int    `toml:"rate_burst"`
}

// Finalize applies defaults, loads environment overrides, and validates the signing configuration.
func (c *SigningConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *SigningConfig) Merge(overlay *SigningConfig) {
	if overlay.DefaultOrigin != "" {
		c.DefaultOrigin = overlay.DefaultOrigin
	}
	if overlay.RatePerMinute != 0 {
		c.RatePerMinute = overlay.RatePerMinute
	}
	if overlay.RateBurst != 0 {
		c.RateBurst = overlay.RateBurst
	}
}

func (c *SigningConfig) loadDefaults() {
	if c.DefaultOrigin == "" {
		c.DefaultOrigin = "http://localhost:8080"
	}
	if c.RatePerMinute == 0 {
		c.RatePerMinute = 60
	}
	if c.RateBurst == 0 {
		c.RateBurst = 20
	}
}

func (c *SigningConfig) loadEnv() {
	if v := os.Getenv(EnvSigningDefaultOrigin); v != "" {
		c.DefaultOrigin = v
	}
	if v := os.Getenv(EnvSigningRatePerMinute); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RatePerMinute = n
		}
	}
	if v := os.Getenv(EnvSigningRateBurst); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RateBurst = n
		}
	}
}

func (c *SigningConfig) validate() error {
	if c.RatePerMinute < 1 {
		return fmt.Errorf("rate_per_minute must be positive")
	}
	if c.RateBurst < 1 {
		return fmt.Errorf("rate_burst must be positive")
	}
	return nil
}
