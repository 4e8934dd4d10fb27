// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"tracer/config"
	deliverycontext "tracer/internal/delivery/context"
	"tracer/internal/delivery/http/middleware"
	"tracer/internal/delivery/http/response"
	"tracer/internal/domain/entity"
	"tracer/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the account and session handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

type registerRequest struct {
	Name           string  `json:"name" validate:"required,max=100"`
	Email          string  `json:"email" validate:"required,email"`
	Password       string  `json:"password" validate:"required"`
	GraduationYear *int    `json:"graduationYear"`
	Major          *string `json:"major"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// accountResponse is the client-facing account shape. The password hash
// never appears here.
type accountResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	GraduationYear *int    `json:"graduationYear,omitempty"`
	Major          *string `json:"major,omitempty"`
	CreatedAt      string  `json:"createdAt"`
}

type loginResponse struct {
	AccessToken      string          `json:"accessToken"`
	SessionExpiresAt string          `json:"sessionExpiresAt"`
	Account          accountResponse `json:"account"`
}

func toAccountResponse(account *entity.Account) accountResponse {
	return accountResponse{
		ID:             account.ID.String(),
		Name:           account.Name,
		Email:          account.Email,
		GraduationYear: account.GraduationYear,
		Major:          account.Major,
		CreatedAt:      account.CreatedAt.Format(time.RFC3339),
	}
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input registerRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:           input.Name,
		Email:          input.Email,
		Password:       input.Password,
		GraduationYear: input.GraduationYear,
		Major:          input.Major,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAccountResponse(output.Account), "Account registered successfully")
}

// Login handles the login request. On success the opaque session token is
// set as an HttpOnly cookie and the short-lived access token is returned in
// the body for non-browser clients.
func (h *AuthHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.sessionCookie(output.SessionToken, output.SessionExpiresAt))

	return response.Success(c, http.StatusOK, loginResponse{
		AccessToken:      output.AccessToken,
		SessionExpiresAt: output.SessionExpiresAt.Format(time.RFC3339),
		Account:          toAccountResponse(output.Account),
	}, "Login successful")
}

// Logout revokes the current session and clears the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	cookie, err := c.Cookie(middleware.SessionCookieName)
	if err != nil || cookie.Value == "" {
		// No session cookie means there is nothing to revoke.
		return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
	}

	if err := h.uc.Logout(c.Request().Context(), cookie.Value); err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.expiredSessionCookie())

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// GetProfile returns the authenticated account's own profile.
func (h *AuthHandler) GetProfile(c echo.Context) error {
	accountID, ok := deliverycontext.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_INVALID", "Authentication required")
	}

	account, err := h.uc.GetProfile(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account), "Profile retrieved successfully")
}

func (h *AuthHandler) sessionCookie(token string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.cookieSecure(),
		SameSite: h.cookieSameSite(),
	}
}

func (h *AuthHandler) expiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure(),
		SameSite: h.cookieSameSite(),
	}
}

func (h *AuthHandler) cookieSecure() bool {
	return h.cfg != nil && h.cfg.Auth != nil && h.cfg.Auth.CookieSecure
}

func (h *AuthHandler) cookieSameSite() http.SameSite {
	if h.cfg == nil || h.cfg.Auth == nil {
		return http.SameSiteLaxMode
	}

	switch h.cfg.Auth.CookieSameSite {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
