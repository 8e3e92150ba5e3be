package ports

import "github.com/paydash/payment-tracker/internal/core/domain"

// TokenService issues and verifies signed, time-limited bearer tokens.
// It is stateless: no server-side session or revocation list exists.
type TokenService interface {
	// Issue produces a signed token embedding the username, role, issue
	// time, and expiry.
	Issue(username, role string) (string, error)
	// Verify returns the embedded claims, domain.ErrTokenExpired when the
	// token is past its expiry, or domain.ErrTokenMalformed when the
	// signature or structure is invalid.
	Verify(token string) (domain.TokenClaims, error)
}
