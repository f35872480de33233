package ports

import (
	"context"
	"time"

	"github.com/luminastudio/backoffice/internal/core/domain"
)

// UserRepository defines persistence for User records.
//
// Emails are stored lowercased; callers normalize before lookup. A syntactically
// invalid id must behave as not-found, never as an error.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByResetToken(ctx context.Context, token string) (*domain.User, error)

	// SetResetToken overwrites any previous reset token and expiry.
	SetResetToken(ctx context.Context, id, token string, expiresAt time.Time) error

	// CompletePasswordReset stores the new hash and clears the reset token and
	// its expiry in the same update, so a used token can never be replayed.
	CompletePasswordReset(ctx context.Context, id, passwordHash string) error
}
