// Package tokens generates the per-signer access credentials used to address
// signer-facing operations. Tokens are the sole credential for signing, so
// they must be unguessable and carry no relationship to any other identifier.
package tokens

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// TokenBytes is the entropy of a signing token before encoding.
const TokenBytes = 32

// Issuer produces unique, URL-safe signer access tokens.
type Issuer interface {
	Issue() (string, error)
}

type issuer struct{}

// NewIssuer creates a token issuer backed by the platform CSPRNG.
func NewIssuer() Issuer {
	return issuer{}
}

// Issue returns a new URL-safe token with TokenBytes bytes of entropy.
// Uniqueness is enforced by the unique index on the signer token column;
// the entropy makes collisions and guessing computationally negligible.
func (issuer) Issue() (string, error) {
	buf := make([]byte, TokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
