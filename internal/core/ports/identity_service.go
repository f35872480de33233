package ports

import (
	"context"

	"github.com/luminastudio/backoffice/internal/core/domain"
)

// IdentityService turns a verified token subject into an Identity with freshly
// derived roles. Resolution always hits the store; a revoked allow-list entry
// or a deleted employee record takes effect on the very next request.
type IdentityService interface {
	Resolve(ctx context.Context, subjectID string) (*domain.Identity, error)
}
