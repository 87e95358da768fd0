// Package jwtx issues and verifies the HS256 session tokens used by both the
// agency dashboard and the client portal. There is a single first-party
// issuer, so one shared secret replaces a full keyset.
package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the fallback session lifetime. Both the token expiry
// and the session cookie max-age derive from the configured TTL; the cookie
// never trusts the token's own exp claim.
const DefaultSessionTTL = 12 * time.Hour

// Claims are the session-token claims shared across the service.
// Keep changes additive to preserve compatibility with issued tokens.
type Claims struct {
	jwt.RegisteredClaims

	// Email of the authenticated user.
	Email string `json:"email,omitempty"`

	// Role is one of "owner", "manager" or "client".
	Role string `json:"role,omitempty"`

	// AgencyID is the tenant the user belongs to.
	AgencyID string `json:"agency_id,omitempty"`

	// ClientID is set only for client-role portal users.
	ClientID string `json:"client_id,omitempty"`
}

// NewSessionClaims builds minimally-correct claims for a user session.
func NewSessionClaims(
	subject, email, role, agencyID, clientID string,
	ttl time.Duration,
	issuer string,
	now time.Time,
) Claims {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email:    email,
		Role:     role,
		AgencyID: agencyID,
		ClientID: clientID,
	}
}

// ValidateIssuer checks the issuer matches the expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't before nbf.
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
