package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireAdmin gates admin-only endpoints. Runs after Authenticate; a missing
// identity is a 401, an identity without the admin flag a 403.
func RequireAdmin() echo.MiddlewareFunc {
	return requireFlag(func(isAdmin, _ bool) bool { return isAdmin }, "admin access required")
}

// RequireEmployee gates staff-portal endpoints. Admins pass as well, since
// role derivation marks them as employees.
func RequireEmployee() echo.MiddlewareFunc {
	return requireFlag(func(_, isEmployee bool) bool { return isEmployee }, "employee access required")
}

func requireFlag(allowed func(isAdmin, isEmployee bool) bool, denyMsg string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident := IdentityFrom(c)
			if ident == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if !allowed(ident.IsAdmin, ident.IsEmployee) {
				return echo.NewHTTPError(http.StatusForbidden, denyMsg)
			}
			return next(c)
		}
	}
}
