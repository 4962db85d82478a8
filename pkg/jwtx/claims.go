package jwtx

import (
	"time"

	"github.com/aussiebroadwan/partsdash/pkg/idx"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is how long a dashboard access token stays valid.
const DefaultAccessTokenTTL = 12 * time.Hour

// Claims are the access-token claims the settings API understands. The
// subject is the user id the settings document is keyed by.
type Claims struct {
	jwt.RegisteredClaims

	// Scopes granted to the token, e.g. "settings:read settings:write".
	Scopes []string `json:"scopes,omitempty"`
}

// NewAccessClaims builds claims for subject valid from now for ttl.
func NewAccessClaims(subject, issuer string, scopes []string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        idx.NewAt(now).String(),
		},
		Scopes: scopes,
	}
}

// ValidateIssuer is a no-op when expected is empty.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected != "" && c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiry checks exp and nbf against the current time.
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}
