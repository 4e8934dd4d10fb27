// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tracer/internal/delivery/http/middleware"
	"tracer/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	BoardHandler   *handler.BoardHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	boardHandler   *handler.BoardHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		boardHandler:   params.BoardHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Public listings; no credentials needed.
	e.GET("/job-board", r.boardHandler.ListJobs)
	e.GET("/alumni-tracer", r.boardHandler.SearchAlumni)

	// Routes that require a logged-in account.
	e.GET("/me", r.authHandler.GetProfile, r.authMiddleware.Authenticate)
}
