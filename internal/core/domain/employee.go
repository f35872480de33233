package domain

import "time"

// Employee records staff membership for a User. The record's existence alone
// grants employee-level access, independent of the User's role marker.
type Employee struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Position   string    `json:"position,omitempty"`
	Department string    `json:"department,omitempty"`
	HireDate   time.Time `json:"hire_date,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
