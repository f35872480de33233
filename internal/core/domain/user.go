package domain

import "time"

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// User models any principal able to authenticate: a registered customer, a
// guest session, a staff member, or an admin. Guests carry an empty password
// hash and can never log in with credentials.
type User struct {
	ID                  string    `json:"id"`
	Email               string    `json:"email"`
	Name                string    `json:"name,omitempty"`
	PasswordHash        string    `json:"-"`
	Role                string    `json:"role,omitempty"`
	IsGuest             bool      `json:"isGuest,omitempty"`
	ResetToken          string    `json:"-"`
	ResetTokenExpiresAt time.Time `json:"-"`
	CreatedAt           time.Time `json:"created_at"`
}
