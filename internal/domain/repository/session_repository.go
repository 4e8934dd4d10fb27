package repository

import (
	"context"
	"errors"

	"tracer/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for session persistence.
var (
	// ErrSessionNotFound is returned when no session matches the presented token.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is returned when a matching session exists but is past its expiry.
	ErrSessionExpired = errors.New("session expired")
)

// SessionRepository defines the standard operations for server-side session persistence.
type SessionRepository interface {
	// Create persists a new session record, representing a logged-in client.
	Create(ctx context.Context, session *entity.Session) error

	// FindByTokenHash retrieves a session by the hash of its raw token.
	// Expired sessions are reported via ErrSessionExpired.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// DeleteByTokenHash removes a session by its token hash, ending that login.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteByAccountID removes all sessions belonging to an account.
	DeleteByAccountID(ctx context.Context, accountID uuid.UUID) error

	// DeleteExpired removes all sessions past their expiry.
	DeleteExpired(ctx context.Context) error
}
