package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/luminastudio/backoffice/internal/core/ports"
)

// EmployeeHandler exposes the admin staff-management endpoints. All routes
// sit behind Authenticate + RequireAdmin.
type EmployeeHandler struct {
	employeeService ports.EmployeeService
}

func NewEmployeeHandler(employeeService ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

type provisionEmployeeRequest struct {
	Email      string `json:"email"      validate:"required,email"`
	Name       string `json:"name"       validate:"required"`
	Position   string `json:"position"`
	Department string `json:"department"`
	HireDate   string `json:"hire_date"` // RFC 3339 date, optional
}

type updateEmployeeRequest struct {
	Name       string `json:"name"`
	Position   string `json:"position"`
	Department string `json:"department"`
}

// Provision creates an employee, and the backing user account when the email
// is new to the system.
//
// @Summary      Provision an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      provisionEmployeeRequest  true  "Employee details"
// @Success      201   {object}  domain.Employee
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /admin/employees [post]
func (h *EmployeeHandler) Provision(c echo.Context) error {
	var req provisionEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.ProvisionEmployeeInput{
		Email:      req.Email,
		Name:       req.Name,
		Position:   req.Position,
		Department: req.Department,
	}
	if req.HireDate != "" {
		hireDate, err := time.Parse(time.RFC3339, req.HireDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "hire_date must be RFC 3339")
		}
		input.HireDate = hireDate
	}

	employee, err := h.employeeService.Provision(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, employee)
}

// List returns all employees.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Employee
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.employeeService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employees)
}

// Get returns one employee by id.
//
// @Summary      Fetch an employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Employee id"
// @Success      200  {object}  domain.Employee
// @Failure      404  {object}  errorResponse
// @Router       /admin/employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	employee, err := h.employeeService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// Update edits an employee's profile fields.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Employee id"
// @Param        body  body      updateEmployeeRequest  true  "Fields to update"
// @Success      200   {object}  domain.Employee
// @Failure      404   {object}  errorResponse
// @Router       /admin/employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	var req updateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	employee, err := h.employeeService.Update(c.Request().Context(), c.Param("id"), ports.UpdateEmployeeInput{
		Name:       req.Name,
		Position:   req.Position,
		Department: req.Department,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// Delete removes an employee and cleans its assignments out of projects and
// tickets.
//
// @Summary      Delete an employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Employee id"
// @Success      204  "No Content"
// @Failure      404  {object}  errorResponse
// @Router       /admin/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	if err := h.employeeService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
