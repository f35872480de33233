package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/luminastudio/backoffice/internal/api/middleware"
	"github.com/luminastudio/backoffice/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Authenticate middleware.
// Its presence proves the middleware ran; a protected handler reached without
// it is a wiring bug surfaced as 401, never as a panic.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	ident := middleware.IdentityFrom(c)
	if ident == nil || ident.User == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return ident, nil
}
