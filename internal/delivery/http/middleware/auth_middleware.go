// Package middleware contains the HTTP middleware for the delivery layer.
package middleware

import (
	"strings"

	deliverycontext "tracer/internal/delivery/context"
	"tracer/internal/delivery/http/response"
	"tracer/internal/domain/service"
	"tracer/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session_token"

// AuthMiddleware guards routes that require a logged-in account. It accepts
// either the session cookie set at login or a Bearer access token.
type AuthMiddleware struct {
	authUC   usecase.AuthUsecase
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase, tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC, tokenSvc: tokenSvc}
}

// Authenticate resolves the request's credentials to an account ID and stores
// it on the context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		// Session cookie first: it is what the login flow hands to browsers.
		if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
			accountID, err := m.authUC.ValidateSession(c.Request().Context(), cookie.Value)
			if err != nil {
				return response.Unauthorized(c, "SESSION_INVALID", "Session is invalid or expired")
			}
			deliverycontext.SetAccountID(c, accountID)

			return next(c)
		}

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "CREDENTIALS_MISSING", "Session cookie or Authorization header is required")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}
		deliverycontext.SetAccountID(c, claims.AccountID)

		return next(c)
	}
}
