package service

import (
	"context"
	"errors"

	"github.com/luminastudio/backoffice/internal/core/domain"
	"github.com/luminastudio/backoffice/internal/core/ports"
)

// IdentityService resolves a token subject to an Identity. Every call reads
// current persisted state; there is no cache, so revoking an allow-list entry
// or deleting an employee record takes effect on the next request.
type IdentityService struct {
	users       ports.UserRepository
	employees   ports.EmployeeRepository
	adminEmails []string
}

func NewIdentityService(users ports.UserRepository, employees ports.EmployeeRepository, adminEmails []string) *IdentityService {
	return &IdentityService{users: users, employees: employees, adminEmails: adminEmails}
}

func (s *IdentityService) Resolve(ctx context.Context, subjectID string) (*domain.Identity, error) {
	user, err := s.users.FindByID(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	employeeExists := false
	if _, err := s.employees.FindByUserID(ctx, subjectID); err == nil {
		employeeExists = true
	} else if !errors.Is(err, domain.ErrEmployeeNotFound) {
		return nil, err
	}

	return &domain.Identity{
		User:    user,
		RoleSet: domain.DeriveRole(user, employeeExists, s.adminEmails),
	}, nil
}
