package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
	ErrMissingSub  = errors.New("jwtx: missing subject")
	ErrShortSecret = errors.New("jwtx: secret must be at least 32 bytes")
)

const minSecretLength = 32

// Signer turns claims into a compact JWT.
type Signer interface {
	Sign(Claims) (string, error)
}

// Verifier validates a JWT and returns its claims.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// HS256 signs and verifies tokens with a shared secret. The dashboard's
// identity provider and the settings API share the secret out of band.
type HS256 struct {
	secret []byte
	issuer string
}

// NewHS256 returns an HS256 signer/verifier. issuer may be empty to skip the
// iss check.
func NewHS256(secret []byte, issuer string) (*HS256, error) {
	if len(secret) < minSecretLength {
		return nil, ErrShortSecret
	}
	return &HS256{secret: secret, issuer: issuer}, nil
}

func (h *HS256) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(h.secret)
}

func (h *HS256) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(), // exp/nbf/iss are checked below
	)

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return h.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, ErrMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSig
		default:
			return Claims{}, fmt.Errorf("jwtx: parse or verify: %w", err)
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrMalformed
	}

	if err := claims.ValidateIssuer(h.issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiry(); err != nil {
		return Claims{}, err
	}
	if claims.Subject == "" {
		return Claims{}, ErrMissingSub
	}

	return *claims, nil
}
