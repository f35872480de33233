package service

import (
	"context"
	"fmt"
	"time"

	"github.com/luminastudio/backoffice/internal/core/domain"
	"github.com/luminastudio/backoffice/internal/core/ports"
)

// --- in-memory user repository ---

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by id
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[created.ID] = cloneUser(created)
	return cloneUser(created), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByResetToken(_ context.Context, token string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ResetToken != "" && u.ResetToken == token {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) SetResetToken(_ context.Context, id, token string, expiresAt time.Time) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.ResetToken = token
	u.ResetTokenExpiresAt = expiresAt
	return nil
}

func (r *stubUserRepo) CompletePasswordReset(_ context.Context, id, passwordHash string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	u.ResetToken = ""
	u.ResetTokenExpiresAt = time.Time{}
	return nil
}

// --- in-memory employee repository ---

type stubEmployeeRepo struct {
	employees map[string]*domain.Employee
	nextID    int
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{employees: make(map[string]*domain.Employee)}
}

func cloneEmployee(e *domain.Employee) *domain.Employee {
	if e == nil {
		return nil
	}
	clone := *e
	return &clone
}

func (r *stubEmployeeRepo) Create(_ context.Context, employee *domain.Employee) (*domain.Employee, error) {
	for _, existing := range r.employees {
		if existing.UserID == employee.UserID {
			return nil, domain.ErrEmployeeExists
		}
	}
	r.nextID++
	created := cloneEmployee(employee)
	created.ID = fmt.Sprintf("emp-%d", r.nextID)
	r.employees[created.ID] = cloneEmployee(created)
	return cloneEmployee(created), nil
}

func (r *stubEmployeeRepo) FindByID(_ context.Context, id string) (*domain.Employee, error) {
	if e, ok := r.employees[id]; ok {
		return cloneEmployee(e), nil
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) FindByUserID(_ context.Context, userID string) (*domain.Employee, error) {
	for _, e := range r.employees {
		if e.UserID == userID {
			return cloneEmployee(e), nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) List(_ context.Context) ([]*domain.Employee, error) {
	out := make([]*domain.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		out = append(out, cloneEmployee(e))
	}
	return out, nil
}

func (r *stubEmployeeRepo) Update(_ context.Context, employee *domain.Employee) error {
	if _, ok := r.employees[employee.ID]; !ok {
		return domain.ErrEmployeeNotFound
	}
	r.employees[employee.ID] = cloneEmployee(employee)
	return nil
}

func (r *stubEmployeeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.employees[id]; !ok {
		return domain.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	return nil
}

// --- in-memory project / ticket repositories ---

type stubProjectRepo struct {
	projects []*domain.Project
}

func (r *stubProjectRepo) List(_ context.Context) ([]*domain.Project, error) {
	return r.projects, nil
}

func (r *stubProjectRepo) RemoveAssignee(_ context.Context, employeeID string) error {
	for _, p := range r.projects {
		kept := p.AssignedEmployees[:0]
		for _, id := range p.AssignedEmployees {
			if id != employeeID {
				kept = append(kept, id)
			}
		}
		p.AssignedEmployees = kept
	}
	return nil
}

type stubTicketRepo struct {
	tickets []*domain.Ticket
}

func (r *stubTicketRepo) List(_ context.Context) ([]*domain.Ticket, error) {
	return r.tickets, nil
}

func (r *stubTicketRepo) ClearAssignee(_ context.Context, employeeID string) error {
	for _, tk := range r.tickets {
		if tk.AssignedTo == employeeID {
			tk.AssignedTo = ""
		}
	}
	return nil
}

// --- mailer / queue stubs ---

type stubMailer struct {
	resetLinks   map[string]string // recipient -> link
	resetErr     error
	welcomeSent  []string
	contactsSent int
}

func newStubMailer() *stubMailer {
	return &stubMailer{resetLinks: make(map[string]string)}
}

func (m *stubMailer) SendPasswordReset(_ context.Context, to, resetLink string) error {
	if m.resetErr != nil {
		return m.resetErr
	}
	m.resetLinks[to] = resetLink
	return nil
}

func (m *stubMailer) SendWelcome(_ context.Context, to, _ string) error {
	m.welcomeSent = append(m.welcomeSent, to)
	return nil
}

func (m *stubMailer) SendContactMessage(_ context.Context, _, _, _ string) error {
	m.contactsSent++
	return nil
}

type stubMailQueue struct {
	welcomes []string
}

func (q *stubMailQueue) EnqueueWelcome(to, _ string) {
	q.welcomes = append(q.welcomes, to)
}

var (
	_ ports.UserRepository     = (*stubUserRepo)(nil)
	_ ports.EmployeeRepository = (*stubEmployeeRepo)(nil)
	_ ports.ProjectRepository  = (*stubProjectRepo)(nil)
	_ ports.TicketRepository   = (*stubTicketRepo)(nil)
	_ ports.Mailer             = (*stubMailer)(nil)
	_ ports.MailQueue          = (*stubMailQueue)(nil)
)
