package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/luminastudio/backoffice/internal/core/domain"
)

func runGuard(t *testing.T, guard echo.MiddlewareFunc, ident *domain.Identity) (int, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if ident != nil {
		c.Set(IdentityKey, ident)
	}

	called := false
	handler := guard(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec.Code, called
}

func TestRequireAdmin_Allows(t *testing.T) {
	ident := &domain.Identity{
		User:    &domain.User{ID: "u1", Email: "boss@example.com"},
		RoleSet: domain.RoleSet{IsAdmin: true, IsEmployee: true},
	}
	code, called := runGuard(t, RequireAdmin(), ident)
	if code != http.StatusOK || !called {
		t.Fatalf("admin should pass, got %d called=%v", code, called)
	}
}

func TestRequireAdmin_ForbidsEmployee(t *testing.T) {
	ident := &domain.Identity{
		User:    &domain.User{ID: "u2", Email: "staff@example.com"},
		RoleSet: domain.RoleSet{IsEmployee: true},
	}
	code, called := runGuard(t, RequireAdmin(), ident)
	if code != http.StatusForbidden || called {
		t.Fatalf("employee must be forbidden from admin routes, got %d called=%v", code, called)
	}
}

func TestRequireAdmin_MissingIdentity(t *testing.T) {
	code, called := runGuard(t, RequireAdmin(), nil)
	if code != http.StatusUnauthorized || called {
		t.Fatalf("missing identity is 401, got %d called=%v", code, called)
	}
}

func TestRequireEmployee_AllowsAdmin(t *testing.T) {
	ident := &domain.Identity{
		User:    &domain.User{ID: "u3", Email: "boss@example.com"},
		RoleSet: domain.RoleSet{IsAdmin: true, IsEmployee: true},
	}
	code, called := runGuard(t, RequireEmployee(), ident)
	if code != http.StatusOK || !called {
		t.Fatalf("admin should pass employee routes, got %d called=%v", code, called)
	}
}

func TestRequireEmployee_ForbidsCustomer(t *testing.T) {
	ident := &domain.Identity{
		User: &domain.User{ID: "u4", Email: "customer@example.com"},
	}
	code, called := runGuard(t, RequireEmployee(), ident)
	if code != http.StatusForbidden || called {
		t.Fatalf("customer must be forbidden from portal routes, got %d called=%v", code, called)
	}
}
