package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/luminastudio/backoffice/internal/core/domain"
	"github.com/luminastudio/backoffice/internal/core/ports"
)

// IdentityKey is the echo context key under which Authenticate stores the
// resolved *domain.Identity.
const IdentityKey = "identity"

// TokenVerifier is the slice of the token codec the middleware needs.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Authenticate extracts the bearer token, verifies it, and resolves the
// subject against current persisted state. Roles come from the resolver, never
// from the token, so a revoked privilege is gone on the next request. All
// failures (missing header, bad token, vanished subject) are a uniform 401.
func Authenticate(verifier TokenVerifier, identity ports.IdentityService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			subjectID, err := verifier.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			ident, err := identity.Resolve(c.Request().Context(), subjectID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					// The bearer references a principal that no longer exists.
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
				return err
			}

			c.Set(IdentityKey, ident)
			return next(c)
		}
	}
}

// IdentityFrom returns the identity stored by Authenticate, or nil.
func IdentityFrom(c echo.Context) *domain.Identity {
	ident, _ := c.Get(IdentityKey).(*domain.Identity)
	return ident
}
