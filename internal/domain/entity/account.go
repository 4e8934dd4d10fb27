// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core identity entity, representing one registered alumni-office user.
type Account struct {
	ID             uuid.UUID // Unique identifier generated by the storage layer.
	Name           string    // Display name.
	Email          string    // Login identifier; unique across all accounts.
	PasswordHash   string    // bcrypt hash of the password. Never exposed outside the auth flows.
	GraduationYear *int      // Optional graduation year.
	Major          *string   // Optional major, free text.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
