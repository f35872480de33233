package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/luminastudio/backoffice/internal/core/domain"
	"github.com/luminastudio/backoffice/internal/core/ports"
)

// EmployeeService implements admin staff management. Provisioning creates the
// backing user account when none exists; deletion cleans the employee out of
// project assignee lists and ticket assignments (there is no store-enforced
// foreign key, so the cleanup is explicit).
type EmployeeService struct {
	users     ports.UserRepository
	employees ports.EmployeeRepository
	projects  ports.ProjectRepository
	tickets   ports.TicketRepository
	hasher    *PasswordHasher
	logger    zerolog.Logger
}

func NewEmployeeService(
	users ports.UserRepository,
	employees ports.EmployeeRepository,
	projects ports.ProjectRepository,
	tickets ports.TicketRepository,
	hasher *PasswordHasher,
	logger zerolog.Logger,
) *EmployeeService {
	return &EmployeeService{
		users:     users,
		employees: employees,
		projects:  projects,
		tickets:   tickets,
		hasher:    hasher,
		logger:    logger,
	}
}

func (s *EmployeeService) Provision(ctx context.Context, input ports.ProvisionEmployeeInput) (*domain.Employee, error) {
	email := normalizeEmail(input.Email)
	if email == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		user, err = s.createBackingUser(ctx, email, input.Name)
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		if _, err := s.employees.FindByUserID(ctx, user.ID); err == nil {
			return nil, domain.ErrEmployeeExists
		} else if !errors.Is(err, domain.ErrEmployeeNotFound) {
			return nil, err
		}
	}

	employee := &domain.Employee{
		UserID:     user.ID,
		Email:      email,
		Name:       input.Name,
		Position:   input.Position,
		Department: input.Department,
		HireDate:   input.HireDate,
		CreatedAt:  time.Now().UTC(),
	}
	created, err := s.employees.Create(ctx, employee)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("employee_id", created.ID).
		Str("user_id", user.ID).
		Msg("employee provisioned")
	return created, nil
}

func (s *EmployeeService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	return s.employees.FindByID(ctx, id)
}

func (s *EmployeeService) List(ctx context.Context) ([]*domain.Employee, error) {
	return s.employees.List(ctx)
}

func (s *EmployeeService) Update(ctx context.Context, id string, input ports.UpdateEmployeeInput) (*domain.Employee, error) {
	employee, err := s.employees.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		employee.Name = input.Name
	}
	if input.Position != "" {
		employee.Position = input.Position
	}
	if input.Department != "" {
		employee.Department = input.Department
	}

	if err := s.employees.Update(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	employee, err := s.employees.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.employees.Delete(ctx, employee.ID); err != nil {
		return err
	}

	// Cleanup failures leave dangling references; log and continue so the
	// delete itself is not rolled back (there is no transaction to roll back).
	if err := s.projects.RemoveAssignee(ctx, employee.ID); err != nil {
		s.logger.Error().Err(err).Str("employee_id", employee.ID).Msg("project assignee cleanup failed")
	}
	if err := s.tickets.ClearAssignee(ctx, employee.ID); err != nil {
		s.logger.Error().Err(err).Str("employee_id", employee.ID).Msg("ticket assignee cleanup failed")
	}

	s.logger.Info().Str("employee_id", employee.ID).Msg("employee deleted")
	return nil
}

// createBackingUser provisions a User for a staff member who never registered.
// The account gets an unguessable random password; the employee signs in after
// completing a password reset.
func (s *EmployeeService) createBackingUser(ctx context.Context, email, name string) (*domain.User, error) {
	seed, err := newResetToken()
	if err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(seed)
	if err != nil {
		return nil, err
	}

	return s.users.Create(ctx, &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         domain.RoleEmployee,
		CreatedAt:    time.Now().UTC(),
	})
}
