package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "tracer/internal/delivery/context"
	domainerrors "tracer/internal/domain/errors"
	"tracer/internal/domain/service"
	mockservice "tracer/internal/mocks/service"
	mockusecase "tracer/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authMiddlewareFixtures struct {
	authUC     *mockusecase.MockAuthUsecase
	tokenSvc   *mockservice.MockTokenService
	middleware *AuthMiddleware
}

func createTestAuthMiddleware(t *testing.T) *authMiddlewareFixtures {
	t.Helper()

	authUC := mockusecase.NewMockAuthUsecase(t)
	tokenSvc := mockservice.NewMockTokenService(t)

	return &authMiddlewareFixtures{
		authUC:     authUC,
		tokenSvc:   tokenSvc,
		middleware: NewAuthMiddleware(authUC, tokenSvc),
	}
}

func newAuthTestContext(configure func(*http.Request)) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if configure != nil {
		configure(req)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// capturingHandler records the account ID the middleware resolved.
func capturingHandler(accountID *uuid.UUID, called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true
		if id, ok := deliverycontext.GetAccountID(c); ok {
			*accountID = id
		}

		return c.NoContent(http.StatusOK)
	}
}

func TestAuthMiddleware_SessionCookie(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	wantID := uuid.New()
	fx.authUC.EXPECT().ValidateSession(context.Background(), "opaque-session-token").Return(wantID, nil)

	c, rec := newAuthTestContext(func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "opaque-session-token"})
	})

	var gotID uuid.UUID
	var called bool
	err := fx.middleware.Authenticate(capturingHandler(&gotID, &called))(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, wantID, gotID)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_InvalidSessionCookie(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.authUC.EXPECT().ValidateSession(context.Background(), "stale-token").Return(uuid.Nil, domainerrors.ErrSessionInvalid)

	c, rec := newAuthTestContext(func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "stale-token"})
	})

	var gotID uuid.UUID
	var called bool
	err := fx.middleware.Authenticate(capturingHandler(&gotID, &called))(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "SESSION_INVALID")
}

func TestAuthMiddleware_BearerToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	wantID := uuid.New()
	fx.tokenSvc.EXPECT().ValidateAccessToken("jwt-access-token").Return(&service.AccessClaims{AccountID: wantID}, nil)

	c, rec := newAuthTestContext(func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer jwt-access-token")
	})

	var gotID uuid.UUID
	var called bool
	err := fx.middleware.Authenticate(capturingHandler(&gotID, &called))(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, wantID, gotID)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_InvalidBearerToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenSvc.EXPECT().ValidateAccessToken("garbage").Return(nil, errors.New("token is malformed"))

	c, rec := newAuthTestContext(func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer garbage")
	})

	var gotID uuid.UUID
	var called bool
	err := fx.middleware.Authenticate(capturingHandler(&gotID, &called))(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestAuthMiddleware_MissingCredentials(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c, rec := newAuthTestContext(nil)

	var gotID uuid.UUID
	var called bool
	err := fx.middleware.Authenticate(capturingHandler(&gotID, &called))(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "CREDENTIALS_MISSING")
}

func TestAuthMiddleware_NonBearerAuthorizationHeader(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c, rec := newAuthTestContext(func(req *http.Request) {
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	})

	var gotID uuid.UUID
	var called bool
	err := fx.middleware.Authenticate(capturingHandler(&gotID, &called))(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
