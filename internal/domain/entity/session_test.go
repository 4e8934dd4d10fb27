package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSession_Expired(t *testing.T) {
	now := time.Now()

	future := &Session{ExpiresAt: now.Add(time.Hour)}
	assert.False(t, future.Expired(now))

	past := &Session{ExpiresAt: now.Add(-time.Hour)}
	assert.True(t, past.Expired(now))

	// Expiry is exclusive, a session expiring exactly now is already invalid.
	boundary := &Session{ExpiresAt: now}
	assert.True(t, boundary.Expired(now))
}
