// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"tracer/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name           string
	Email          string
	Password       string
	GraduationYear *int
	Major          *string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
type RegisterOutput struct {
	Account *entity.Account
}

// LoginOutput returns the credentials minted for a successful login. The
// session token is the opaque cookie value; the access token is a short-lived
// JWT for non-browser clients calling with an Authorization header.
type LoginOutput struct {
	SessionToken     string
	SessionExpiresAt time.Time
	AccessToken      string
	Account          *entity.Account
}

// AuthUsecase defines the interface for account and session business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new account. A duplicate email yields the domain
	// conflict error; a weak password yields the password policy error.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and mints a new session. Unknown email and
	// wrong password are indistinguishable to the caller.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout revokes the session identified by the raw session token.
	// Revoking an unknown or already-revoked token is not an error.
	Logout(ctx context.Context, sessionToken string) error

	// ValidateSession resolves a raw session token to the owning account ID.
	ValidateSession(ctx context.Context, sessionToken string) (uuid.UUID, error)

	// GetProfile returns the account for the given ID.
	GetProfile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
}
