package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tracer/config"
	deliverycontext "tracer/internal/delivery/context"
	"tracer/internal/delivery/http/middleware"
	"tracer/internal/delivery/http/validator"
	"tracer/internal/domain/entity"
	domainerrors "tracer/internal/domain/errors"
	mockusecase "tracer/internal/mocks/usecase"
	"tracer/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestAccount() *entity.Account {
	year := 2019
	major := "Computer Science"

	return &entity.Account{
		ID:             uuid.New(),
		Name:           "Grace Park",
		Email:          "grace.park@example.com",
		GraduationYear: &year,
		Major:          &major,
		CreatedAt:      time.Now(),
	}
}

func TestAuthHandler_Register(t *testing.T) {
	uc := mockusecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, &config.Config{}, newDiscardLogger())

	account := newTestAccount()
	uc.EXPECT().Register(context.Background(), &usecase.RegisterInput{
		Name:           "Grace Park",
		Email:          "grace.park@example.com",
		Password:       "correct horse battery",
		GraduationYear: account.GraduationYear,
		Major:          account.Major,
	}).Return(&usecase.RegisterOutput{Account: account}, nil)

	body := `{"name":"Grace Park","email":"grace.park@example.com","password":"correct horse battery","graduationYear":2019,"major":"Computer Science"}`
	c, rec := newTestContext(http.MethodPost, "/auth/register", body)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "grace.park@example.com")

	// The credential never leaves the server in any form.
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "correct horse battery")
}

func TestAuthHandler_Register_MalformedBody(t *testing.T) {
	uc := mockusecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, &config.Config{}, newDiscardLogger())

	c, rec := newTestContext(http.MethodPost, "/auth/register", `{"name":`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Register_ValidationError(t *testing.T) {
	uc := mockusecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, &config.Config{}, newDiscardLogger())

	// Missing email, the usecase is never reached.
	c, _ := newTestContext(http.MethodPost, "/auth/register", `{"name":"Grace Park","password":"correct horse battery"}`)

	err := h.Register(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	uc := mockusecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, &config.Config{}, newDiscardLogger())

	uc.EXPECT().Register(context.Background(), &usecase.RegisterInput{
		Name:     "Grace Park",
		Email:    "grace.park@example.com",
		Password: "correct horse battery",
	}).Return(nil, domainerrors.ErrEmailAlreadyRegistered)

	body := `{"name":"Grace Park","email":"grace.park@example.com","password":"correct horse battery"}`
	c, _ := newTestContext(http.MethodPost, "/auth/register", body)

	err := h.Register(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	uc := mockusecase.NewMockAuthUsecase(t)
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			CookieSecure:   true,
			CookieSameSite: "strict",
		},
	}
	h := NewAuthHandler(uc, cfg, newDiscardLogger())

	account := newTestAccount()
	expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)
	uc.EXPECT().Login(context.Background(), &usecase.LoginInput{
		Email:    "grace.park@example.com",
		Password: "correct horse battery",
	}).Return(&usecase.LoginOutput{
		SessionToken:     "opaque-session-token",
		SessionExpiresAt: expiresAt,
		AccessToken:      "jwt-access-token",
		Account:          account,
	}, nil)

	body := `{"email":"grace.park@example.com","password":"correct horse battery"}`
	c, rec := newTestContext(http.MethodPost, "/auth/login", body)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, middleware.SessionCookieName, cookie.Name)
	assert.Equal(t, "opaque-session-token", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.WithinDuration(t, expiresAt, cookie.Expires, time.Second)

	// The opaque token travels only in the cookie, the body carries the JWT.
	assert.Contains(t, rec.Body.String(), "jwt-access-token")
	assert.NotContains(t, rec.Body.String(), "opaque-session-token")
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	uc := mockusecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, &config.Config{}, newDiscardLogger())

	uc.EXPECT().Login(context.Background(), &usecase.LoginInput{
		Email:    "grace.park@example.com",
		Password: "wrong password",
	}).Return(nil, domainerrors.ErrInvalidCredentials)

	body := `{"email":"grace.park@example.com","password":"wrong password"}`
	c, _ := newTestContext(http.MethodPost, "/auth/login", body)

	err := h.Login(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthHandler_Logout(t *testing.T) {
	uc := mockusecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, &config.Config{}, newDiscardLogger())

	uc.EXPECT().Logout(context.Background(), "opaque-session-token").Return(nil)

	c, rec := newTestContext(http.MethodPost, "/auth/logout", "")
	c.Request().AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "opaque-session-token"})

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.SessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestAuthHandler_Logout_WithoutCookie(t *testing.T) {
	uc := mockusecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, &config.Config{}, newDiscardLogger())

	c, rec := newTestContext(http.MethodPost, "/auth/logout", "")

	// No cookie, nothing to revoke, still a success.
	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_GetProfile(t *testing.T) {
	uc := mockusecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, &config.Config{}, newDiscardLogger())

	account := newTestAccount()
	uc.EXPECT().GetProfile(context.Background(), account.ID).Return(account, nil)

	c, rec := newTestContext(http.MethodGet, "/me", "")
	deliverycontext.SetAccountID(c, account.ID)

	require.NoError(t, h.GetProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), account.ID.String())
	assert.Contains(t, rec.Body.String(), "grace.park@example.com")
}

func TestAuthHandler_GetProfile_Unauthenticated(t *testing.T) {
	uc := mockusecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, &config.Config{}, newDiscardLogger())

	c, rec := newTestContext(http.MethodGet, "/me", "")

	require.NoError(t, h.GetProfile(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
