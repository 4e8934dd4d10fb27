package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessClaims defines the custom claims carried by the access token.
type AccessClaims struct {
	AccountID uuid.UUID
	jwt.RegisteredClaims
}

// IssuedSession is the result of minting a new session: the raw opaque token
// handed to the client, its expiry, and a short-lived access token for
// non-browser API clients.
type IssuedSession struct {
	Token       string
	ExpiresAt   time.Time
	AccessToken string
}

// TokenService mints and validates the credentials handed out at login.
// The session token is drawn from a cryptographically secure random source
// and is never derived from the account id or the clock.
type TokenService interface {
	// IssueSession generates a fresh opaque session token plus an access
	// token for the given account.
	IssueSession(accountID uuid.UUID) (*IssuedSession, error)

	// HashToken returns the storage hash of a raw session token. Only this
	// hash is ever persisted.
	HashToken(token string) string

	// ValidateAccessToken checks an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*AccessClaims, error)

	// SessionTTL returns the configured lifetime of a session token.
	SessionTTL() time.Duration
}
