package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/luminastudio/backoffice/internal/core/domain"
	"github.com/luminastudio/backoffice/internal/core/ports"
)

const (
	minPasswordLength = 6
	defaultResetTTL   = time.Hour
)

// AuthService implements the credential lifecycle on top of the user store,
// the password hasher, the token codec, and the mail collaborators.
type AuthService struct {
	users        ports.UserRepository
	identity     ports.IdentityService
	hasher       *PasswordHasher
	codec        *TokenCodec
	mailer       ports.Mailer
	welcomeQueue ports.MailQueue
	resetTTL     time.Duration
	resetBaseURL string
}

// NewAuthService wires the lifecycle flows. welcomeQueue may be nil to skip
// welcome mail; resetTTL <= 0 falls back to one hour.
func NewAuthService(
	users ports.UserRepository,
	identity ports.IdentityService,
	hasher *PasswordHasher,
	codec *TokenCodec,
	mailer ports.Mailer,
	welcomeQueue ports.MailQueue,
	resetTTL time.Duration,
	resetBaseURL string,
) *AuthService {
	if resetTTL <= 0 {
		resetTTL = defaultResetTTL
	}
	return &AuthService{
		users:        users,
		identity:     identity,
		hasher:       hasher,
		codec:        codec,
		mailer:       mailer,
		welcomeQueue: welcomeQueue,
		resetTTL:     resetTTL,
		resetBaseURL: resetBaseURL,
	}
}

func (s *AuthService) Register(ctx context.Context, email, password, name string) (string, *domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}
	if len(password) < minPasswordLength {
		return "", nil, domain.ErrPasswordTooShort
	}

	// The unique index on email closes the find-then-insert race: a concurrent
	// duplicate surfaces as ErrEmailTaken from Create instead of a dup record.
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return "", nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", nil, err
	}

	user := &domain.User{
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.codec.Issue(created.ID)
	if err != nil {
		return "", nil, err
	}

	if s.welcomeQueue != nil {
		s.welcomeQueue.EnqueueWelcome(created.Email, created.Name)
	}

	return token, created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.checkCredentials(ctx, email, password)
	if err != nil {
		return "", nil, err
	}

	token, err := s.codec.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GuestLogin(ctx context.Context) (string, *domain.User, error) {
	user := &domain.User{
		Email:     fmt.Sprintf("guest-%s@guest.internal", uuid.NewString()),
		IsGuest:   true,
		CreatedAt: time.Now().UTC(),
	}
	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.codec.Issue(created.ID)
	if err != nil {
		return "", nil, err
	}
	return token, created, nil
}

func (s *AuthService) PortalLogin(ctx context.Context, email, password string) (string, *domain.User, domain.RoleSet, error) {
	token, user, err := s.Login(ctx, email, password)
	if err != nil {
		return "", nil, domain.RoleSet{}, err
	}

	ident, err := s.identity.Resolve(ctx, user.ID)
	if err != nil {
		return "", nil, domain.RoleSet{}, err
	}
	return token, user, ident.RoleSet, nil
}

func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

// RequestPasswordReset behaves identically whether or not the email is
// registered. When it is, a fresh single-use token replaces any earlier one
// and is mailed out; a mail failure propagates, but the stored token stays
// valid until expiry so a retry is safe.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if user.IsGuest {
		return nil
	}

	token, err := newResetToken()
	if err != nil {
		return err
	}
	expiresAt := time.Now().UTC().Add(s.resetTTL)

	if err := s.users.SetResetToken(ctx, user.ID, token, expiresAt); err != nil {
		return err
	}

	link := fmt.Sprintf("%s?token=%s", s.resetBaseURL, token)
	if err := s.mailer.SendPasswordReset(ctx, user.Email, link); err != nil {
		return fmt.Errorf("send reset mail: %w", err)
	}
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return domain.ErrResetTokenInvalid
	}
	if len(newPassword) < minPasswordLength {
		return domain.ErrPasswordTooShort
	}

	user, err := s.users.FindByResetToken(ctx, token)
	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.ErrResetTokenInvalid
	}
	if err != nil {
		return err
	}
	if user.ResetTokenExpiresAt.IsZero() || time.Now().UTC().After(user.ResetTokenExpiresAt) {
		return domain.ErrResetTokenInvalid
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	// Hash is stored and the token cleared in one update, so replaying the
	// same token after success always fails.
	return s.users.CompletePasswordReset(ctx, user.ID, hash)
}

// checkCredentials collapses every mismatch (unknown email, guest account,
// wrong password) into ErrInvalidCredentials.
func (s *AuthService) checkCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if user.IsGuest || !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func newResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
