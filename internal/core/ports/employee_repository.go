package ports

import (
	"context"

	"github.com/luminastudio/backoffice/internal/core/domain"
)

// EmployeeRepository defines persistence for Employee records.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	FindByUserID(ctx context.Context, userID string) (*domain.Employee, error)
	List(ctx context.Context) ([]*domain.Employee, error)
	Update(ctx context.Context, employee *domain.Employee) error
	Delete(ctx context.Context, id string) error
}
