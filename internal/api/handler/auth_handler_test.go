package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/luminastudio/backoffice/internal/api/middleware"
	"github.com/luminastudio/backoffice/internal/core/domain"
	"github.com/luminastudio/backoffice/internal/core/ports"
)

type stubAuthService struct {
	users map[string]*domain.User // keyed by email, value carries ID
	roles domain.RoleSet

	resetRequests []string
	resetErr      error
}

var _ ports.AuthService = (*stubAuthService)(nil)

func newStubAuthService() *stubAuthService {
	return &stubAuthService{users: make(map[string]*domain.User)}
}

func (s *stubAuthService) Register(_ context.Context, email, password, name string) (string, *domain.User, error) {
	email = strings.ToLower(email)
	if _, ok := s.users[email]; ok {
		return "", nil, domain.ErrEmailTaken
	}
	user := &domain.User{ID: "u-" + email, Email: email, Name: name, PasswordHash: password}
	s.users[email] = user
	return "token-" + user.ID, user, nil
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (string, *domain.User, error) {
	user, ok := s.users[strings.ToLower(email)]
	if !ok || user.PasswordHash != password {
		return "", nil, domain.ErrInvalidCredentials
	}
	return "token-" + user.ID, user, nil
}

func (s *stubAuthService) GuestLogin(_ context.Context) (string, *domain.User, error) {
	guest := &domain.User{ID: "guest-1", Email: "guest-1@guest.internal", IsGuest: true}
	return "token-guest-1", guest, nil
}

func (s *stubAuthService) PortalLogin(ctx context.Context, email, password string) (string, *domain.User, domain.RoleSet, error) {
	token, user, err := s.Login(ctx, email, password)
	if err != nil {
		return "", nil, domain.RoleSet{}, err
	}
	return token, user, s.roles, nil
}

func (s *stubAuthService) Profile(_ context.Context, userID string) (*domain.User, error) {
	for _, u := range s.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubAuthService) RequestPasswordReset(_ context.Context, email string) error {
	s.resetRequests = append(s.resetRequests, strings.ToLower(email))
	return s.resetErr
}

func (s *stubAuthService) ResetPassword(_ context.Context, token, newPassword string) error {
	if token != "valid-reset-token" {
		return domain.ErrResetTokenInvalid
	}
	return nil
}

type stubLimiter struct {
	allow bool
	err   error
}

func (s *stubLimiter) Allow(context.Context, string) (bool, error) { return s.allow, s.err }

func newJSONContext(method, target, body string) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e, e.NewContext(req, rec), rec
}

func TestAuthHandler_Register(t *testing.T) {
	h := NewAuthHandler(newStubAuthService(), nil, nil)
	_, c, rec := newJSONContext(http.MethodPost, "/auth/register",
		`{"email":"alice@example.com","password":"pw123456","name":"Alice"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"token":"token-u-alice@example.com"`) ||
		!strings.Contains(body, `"email":"alice@example.com"`) {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestAuthHandler_Register_InvalidEmail(t *testing.T) {
	h := NewAuthHandler(newStubAuthService(), nil, nil)
	_, c, _ := newJSONContext(http.MethodPost, "/auth/register",
		`{"email":"not-an-email","password":"pw123456"}`)

	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Register_DuplicateSurfacesSentinel(t *testing.T) {
	svc := newStubAuthService()
	h := NewAuthHandler(svc, nil, nil)

	_, c, _ := newJSONContext(http.MethodPost, "/auth/register",
		`{"email":"bob@example.com","password":"pw123456"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, c, _ = newJSONContext(http.MethodPost, "/auth/register",
		`{"email":"bob@example.com","password":"pw123456"}`)
	if err := h.Register(c); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	h := NewAuthHandler(newStubAuthService(), nil, nil)
	_, c, _ := newJSONContext(http.MethodPost, "/auth/login",
		`{"email":"nobody@example.com","password":"whatever"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_RateLimited(t *testing.T) {
	h := NewAuthHandler(newStubAuthService(), &stubLimiter{allow: false}, nil)
	_, c, _ := newJSONContext(http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"pw123456"}`)

	err := h.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Login_LimiterFailureFailsOpen(t *testing.T) {
	svc := newStubAuthService()
	if _, _, err := svc.Register(context.Background(), "carol@example.com", "pw123456", ""); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	h := NewAuthHandler(svc, &stubLimiter{err: errors.New("redis down")}, nil)
	_, c, rec := newJSONContext(http.MethodPost, "/auth/login",
		`{"email":"carol@example.com","password":"pw123456"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("limiter backend failure must not block login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_GuestLogin(t *testing.T) {
	h := NewAuthHandler(newStubAuthService(), nil, nil)
	_, c, rec := newJSONContext(http.MethodPost, "/auth/guest", "")

	if err := h.GuestLogin(c); err != nil {
		t.Fatalf("guest login failed: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"isGuest":true`) {
		t.Fatalf("unexpected guest response %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthHandler_AdminLogin_ReportsAdminFlagOnly(t *testing.T) {
	svc := newStubAuthService()
	svc.roles = domain.RoleSet{IsAdmin: true, IsEmployee: true}
	if _, _, err := svc.Register(context.Background(), "boss@example.com", "pw123456", ""); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	h := NewAuthHandler(svc, nil, nil)
	_, c, rec := newJSONContext(http.MethodPost, "/auth/admin/login",
		`{"email":"boss@example.com","password":"pw123456"}`)

	if err := h.AdminLogin(c); err != nil {
		t.Fatalf("admin login failed: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"isAdmin":true`) {
		t.Fatalf("admin flag missing: %s", body)
	}
	if strings.Contains(body, "isEmployee") {
		t.Fatalf("admin portal response must not carry the employee flag: %s", body)
	}
}

func TestAuthHandler_EmployeeLogin_ReportsEmployeeFlag(t *testing.T) {
	svc := newStubAuthService()
	svc.roles = domain.RoleSet{IsEmployee: true}
	if _, _, err := svc.Register(context.Background(), "staff@example.com", "pw123456", ""); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	h := NewAuthHandler(svc, nil, nil)
	_, c, rec := newJSONContext(http.MethodPost, "/auth/employee/login",
		`{"email":"staff@example.com","password":"pw123456"}`)

	if err := h.EmployeeLogin(c); err != nil {
		t.Fatalf("employee login failed: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"isEmployee":true`) {
		t.Fatalf("employee flag missing: %s", rec.Body.String())
	}
}

func TestAuthHandler_Profile(t *testing.T) {
	svc := newStubAuthService()
	_, user, err := svc.Register(context.Background(), "dave@example.com", "pw123456", "Dave")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	h := NewAuthHandler(svc, nil, nil)
	_, c, rec := newJSONContext(http.MethodGet, "/auth/profile", "")
	c.Set(middleware.IdentityKey, &domain.Identity{User: user})

	if err := h.Profile(c); err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"email":"dave@example.com"`) {
		t.Fatalf("unexpected profile response %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthHandler_Profile_DeletedAccount(t *testing.T) {
	h := NewAuthHandler(newStubAuthService(), nil, nil)
	_, c, _ := newJSONContext(http.MethodGet, "/auth/profile", "")
	c.Set(middleware.IdentityKey, &domain.Identity{User: &domain.User{ID: "gone"}})

	if err := h.Profile(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for vanished account, got %v", err)
	}
}

func TestAuthHandler_ForgotPassword_UniformResponse(t *testing.T) {
	svc := newStubAuthService()
	if _, _, err := svc.Register(context.Background(), "known@example.com", "pw123456", ""); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	h := NewAuthHandler(svc, nil, nil)

	_, c, knownRec := newJSONContext(http.MethodPost, "/auth/forgot-password",
		`{"email":"known@example.com"}`)
	if err := h.ForgotPassword(c); err != nil {
		t.Fatalf("forgot-password (known) failed: %v", err)
	}

	_, c, unknownRec := newJSONContext(http.MethodPost, "/auth/forgot-password",
		`{"email":"unknown@example.com"}`)
	if err := h.ForgotPassword(c); err != nil {
		t.Fatalf("forgot-password (unknown) failed: %v", err)
	}

	if knownRec.Code != http.StatusOK || unknownRec.Code != knownRec.Code {
		t.Fatalf("status must not leak account existence: %d vs %d", knownRec.Code, unknownRec.Code)
	}
	if knownRec.Body.String() != unknownRec.Body.String() {
		t.Fatalf("body must not leak account existence:\n%s\nvs\n%s", knownRec.Body.String(), unknownRec.Body.String())
	}
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	h := NewAuthHandler(newStubAuthService(), nil, nil)

	_, c, rec := newJSONContext(http.MethodPost, "/auth/reset-password",
		`{"token":"valid-reset-token","password":"newpass1"}`)
	if err := h.ResetPassword(c); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"success":true`) {
		t.Fatalf("unexpected response %d: %s", rec.Code, rec.Body.String())
	}

	_, c, _ = newJSONContext(http.MethodPost, "/auth/reset-password",
		`{"token":"bogus","password":"newpass1"}`)
	if err := h.ResetPassword(c); !errors.Is(err, domain.ErrResetTokenInvalid) {
		t.Fatalf("expected ErrResetTokenInvalid, got %v", err)
	}
}
