package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents a server-side login session. The raw bearer token lives
// only with the client; the database stores a SHA-256 hash of it, so a leaked
// sessions table cannot be replayed.
type Session struct {
	ID        uuid.UUID // Unique ID of this session record.
	AccountID uuid.UUID // Account this session belongs to.
	TokenHash string    // SHA-256 hash of the raw session token.
	ExpiresAt time.Time // Expiry; the session is invalid after this instant.
	CreatedAt time.Time // When the session was created (login time).
}

// Expired reports whether the session is past its expiry at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
