package ports

import (
	"context"

	"github.com/luminastudio/backoffice/internal/core/domain"
)

// AuthService covers the credential lifecycle: registration, the login
// variants, guest sessions, and the two-step password reset.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	GuestLogin(ctx context.Context) (string, *domain.User, error)

	// PortalLogin is Login plus a fresh role resolution, for the admin and
	// employee portal entry points. The returned flags are informational; every
	// later request re-derives them server-side.
	PortalLogin(ctx context.Context, email, password string) (string, *domain.User, domain.RoleSet, error)

	Profile(ctx context.Context, userID string) (*domain.User, error)

	// RequestPasswordReset never reports whether the email exists.
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}
