// Package cryptox holds the random-material helpers shared by the settings
// binaries and the SDK.
package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

const (
	// RefreshTokenSize is the entropy of refresh tokens, in bytes.
	RefreshTokenSize = 32

	// SecretSize is the length of generated HS256 secrets, in bytes. It
	// matches the minimum the verifier accepts.
	SecretSize = 32

	fingerprintLen = 12
)

// RandomToken returns size random bytes, base64url encoded without padding.
func RandomToken(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("cryptox: token size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("cryptox: read random: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// NewRefreshToken returns an opaque refresh token.
func NewRefreshToken() (string, error) { return RandomToken(RefreshTokenSize) }

// NewSecret returns a printable HS256 secret. The encoded form is longer
// than SecretSize, so it always satisfies the verifier's length check.
func NewSecret() (string, error) { return RandomToken(SecretSize) }

// Fingerprint returns a short, stable identifier for token that is safe to
// log. It is not reversible and not meant for lookups.
func Fingerprint(token string) string {
	if token == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])[:fingerprintLen]
}
