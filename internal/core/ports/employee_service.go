package ports

import (
	"context"
	"time"

	"github.com/luminastudio/backoffice/internal/core/domain"
)

// ProvisionEmployeeInput is the admin-supplied data for staffing someone.
type ProvisionEmployeeInput struct {
	Email      string
	Name       string
	Position   string
	Department string
	HireDate   time.Time
}

// UpdateEmployeeInput carries the editable employee fields.
type UpdateEmployeeInput struct {
	Name       string
	Position   string
	Department string
}

// EmployeeService covers admin-driven staff management. Delete performs the
// referential cleanup across projects and tickets.
type EmployeeService interface {
	Provision(ctx context.Context, input ProvisionEmployeeInput) (*domain.Employee, error)
	Get(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context) ([]*domain.Employee, error)
	Update(ctx context.Context, id string, input UpdateEmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
}
