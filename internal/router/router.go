// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/ermekov/barbershop-booking/internal/handler"
	"github.com/ermekov/barbershop-booking/internal/middleware"
)

// RegisterRoutes registers routes that need neither authentication nor
// caching.  Currently that is only the health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication endpoints.  Token issuance
// and logout live under /v1/auth and carry no middleware; /v1/me is the
// canary endpoint for a valid admin session.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Refresh rotates the refresh token; refresh-access only re-issues
	// the short-lived access token.
	g.POST("/refresh", a.Refresh)
	g.POST("/refresh-access", a.RefreshAccess)
	// Logout works with either a bearer token (all sessions) or a
	// refresh token in the body (one session), so no JWT middleware.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole("ADMIN"))
	auth.GET("/me", a.Me)
}
