package ports

import (
	"context"

	"github.com/luminastudio/backoffice/internal/core/domain"
)

// ProjectRepository defines persistence for Projects.
type ProjectRepository interface {
	List(ctx context.Context) ([]*domain.Project, error)

	// RemoveAssignee pulls the employee id out of every project's
	// assigned-employees list. Referential cleanup on employee deletion.
	RemoveAssignee(ctx context.Context, employeeID string) error
}

// TicketRepository defines persistence for Tickets.
type TicketRepository interface {
	List(ctx context.Context) ([]*domain.Ticket, error)

	// ClearAssignee nulls the assignment on every ticket held by the employee.
	ClearAssignee(ctx context.Context, employeeID string) error
}
