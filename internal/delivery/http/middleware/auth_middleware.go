// Package middleware provides HTTP middleware for the API surface.
package middleware

import (
	"crypto/subtle"

	"mihrab/config"
	"mihrab/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

const apiKeyHeader = "X-API-Key"

// AuthMiddleware guards every route except the health check with a static
// API key.
type AuthMiddleware struct {
	cfg *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg}
}

// RequireAPIKey validates the X-API-Key header against the configured key.
func (m *AuthMiddleware) RequireAPIKey(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := c.Request().Header.Get(apiKeyHeader)
		if key == "" {
			return response.Unauthorized(c, "MISSING_API_KEY", "API key header is missing")
		}

		if subtle.ConstantTimeCompare([]byte(key), []byte(m.cfg.APIKey)) != 1 {
			return response.Unauthorized(c, "INVALID_API_KEY", "Invalid API key")
		}

		return next(c)
	}
}
