package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the default lifetime for a session token. Long
// enough to cover a working shift, short enough that a leaked token dies
// the same day.
const DefaultSessionTTL = 12 * time.Hour

// Claims are session-token claims. The city and role claims are the
// authorization scope: every request re-derives who may read or write
// which city from the verified token, never from client-supplied fields.
type Claims struct {
	jwt.RegisteredClaims

	// Username of the authenticated caller (also the subject).
	Username string `json:"username,omitempty"`

	// City the caller is scoped to. "*" means all cities.
	City string `json:"city,omitempty"`

	// Role is "supervisor" or "administrator".
	Role string `json:"role,omitempty"`
}

// NewSessionClaims builds minimally-correct session claims.
func NewSessionClaims(
	username, city, role string,
	ttl time.Duration,
	issuer string,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Username: username,
		City:     city,
		Role:     role,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used
// before it is valid (nbf).
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
