package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bgrbarbosa/product-catalog/internal/core/ports"
)

// Context keys set by Auth.
const (
	ContextEmail = "email"
	ContextRoles = "roles"
)

// Auth validates the bearer token and injects the caller's email and roles into context.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			principal, err := verifier.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(ContextEmail, principal.Email)
			c.Set(ContextRoles, principal.Roles)

			return next(c)
		}
	}
}

// Roles returns the roles Auth stored for the caller, or nil.
func Roles(c echo.Context) []string {
	roles, _ := c.Get(ContextRoles).([]string)
	return roles
}
