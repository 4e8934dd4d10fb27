package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"tracer/config"
	"tracer/internal/domain/service"
)

// sessionTokenBytes is the entropy of the opaque session token.
const sessionTokenBytes = 32

// tokenService is a concrete implementation of the TokenService interface.
// Session tokens are opaque random strings validated against the server-side
// session store; access tokens are short-lived HS256 JWTs.
type tokenService struct {
	accessSecret string
	accessTTL    time.Duration
	sessionTTL   time.Duration
}

// NewTokenService is the constructor for tokenService.
func NewTokenService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("access token secret must be provided")
	}

	accessTTL := 15 * time.Minute
	sessionTTL := time.Hour
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.SessionTTL > 0 {
			sessionTTL = cfg.Auth.SessionTTL
		}
	}

	return &tokenService{
		accessSecret: cfg.SecretKey.Access,
		accessTTL:    accessTTL,
		sessionTTL:   sessionTTL,
	}, nil
}

// IssueSession draws the session token from crypto/rand and mints the
// companion access token.
func (s *tokenService) IssueSession(accountID uuid.UUID) (*service.IssuedSession, error) {
	raw := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return nil, errors.Wrap(err, "failed to read session token entropy")
	}
	token := base64.RawURLEncoding.EncodeToString(raw)

	accessToken, err := s.generateAccessToken(accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &service.IssuedSession{
		Token:       token,
		ExpiresAt:   time.Now().Add(s.sessionTTL),
		AccessToken: accessToken,
	}, nil
}

// HashToken returns the hex-encoded SHA-256 digest of a raw session token.
func (s *tokenService) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// ValidateAccessToken checks the signature and expiry of an access token.
func (s *tokenService) ValidateAccessToken(tokenString string) (*service.AccessClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse access token")
	}
	if !token.Valid {
		return nil, errors.New("access token is not valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected access token claims type")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "access token subject missing")
	}

	accountID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Wrap(err, "access token subject is not a valid account id")
	}

	return &service.AccessClaims{AccountID: accountID}, nil
}

// SessionTTL returns the configured session lifetime.
func (s *tokenService) SessionTTL() time.Duration {
	return s.sessionTTL
}

func (s *tokenService) generateAccessToken(accountID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  accountID.String(),
		"iat":  now.Unix(),
		"exp":  now.Add(s.accessTTL).Unix(),
		"type": "access",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.accessSecret))
}
