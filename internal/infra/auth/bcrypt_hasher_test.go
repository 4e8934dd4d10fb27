package auth

import (
	"testing"

	"tracer/config"
	domainerrors "tracer/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "correct horse battery"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("correct horse battery")
	assert.NoError(t, err)
	second, err := hasher.Hash("correct horse battery")
	assert.NoError(t, err)

	// Same input, different salt, different hash.
	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	password := "correct horse battery"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("wrong password", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	assert.NoError(t, hasher.ValidatePasswordStrength("12345678"))
	assert.NoError(t, hasher.ValidatePasswordStrength("a much longer passphrase"))

	err := hasher.ValidatePasswordStrength("1234567")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordTooWeak))

	err = hasher.ValidatePasswordStrength("")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordTooWeak))
}

func TestBcryptHasher_ConfiguredCostAndMinLength(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        6,
			PasswordMinLength: 12,
		},
	}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("any password at all")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, 6, cost)

	// Minimum length follows config, not the default.
	assert.Error(t, hasher.ValidatePasswordStrength("elevenchars"))
	assert.NoError(t, hasher.ValidatePasswordStrength("twelve chars!"))
}

func TestBcryptHasher_NilConfigFallsBackToDefaults(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	assert.NoError(t, hasher.ValidatePasswordStrength("12345678"))
	assert.Error(t, hasher.ValidatePasswordStrength("1234567"))
}
