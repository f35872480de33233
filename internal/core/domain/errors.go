package domain

import "errors"

var (
	// ErrInvalidCredentials covers every login failure: unknown email, wrong
	// password, guest account. Call sites must not distinguish between them.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers every session token failure: malformed, forged,
	// expired. One sentinel so nothing downstream can leak which check failed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrResetTokenInvalid covers both unknown and expired reset tokens.
	ErrResetTokenInvalid = errors.New("reset token invalid or expired")

	ErrUserNotFound     = errors.New("user not found")
	ErrEmailTaken       = errors.New("email already registered")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")

	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeExists   = errors.New("user is already an employee")

	ErrForbidden   = errors.New("access forbidden")
	ErrRateLimited = errors.New("too many attempts")
)
