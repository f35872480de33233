package handler

import "github.com/luminastudio/backoffice/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Token    string `json:"token"    validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type userResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	IsGuest bool   `json:"isGuest,omitempty"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type portalAuthResponse struct {
	Token      string       `json:"token"`
	User       userResponse `json:"user"`
	IsAdmin    *bool        `json:"isAdmin,omitempty"`
	IsEmployee *bool        `json:"isEmployee,omitempty"`
}

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:      u.ID,
		Email:   u.Email,
		Name:    u.Name,
		IsGuest: u.IsGuest,
	}
}
