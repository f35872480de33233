package domain

import "time"

// Project is a back-office work container staffed by employees.
type Project struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description,omitempty"`
	Status            string    `json:"status"`
	AssignedEmployees []string  `json:"assigned_employees"`
	CreatedAt         time.Time `json:"created_at"`
}

// Ticket is a customer support request, optionally assigned to one employee.
type Ticket struct {
	ID         string    `json:"id"`
	Subject    string    `json:"subject"`
	Status     string    `json:"status"`
	CustomerID string    `json:"customer_id,omitempty"`
	AssignedTo string    `json:"assigned_to,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
