package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/luminastudio/backoffice/internal/core/ports"
)

// PortalHandler serves the staff portal's read surface. Routes sit behind
// Authenticate + RequireEmployee.
type PortalHandler struct {
	projects ports.ProjectRepository
	tickets  ports.TicketRepository
}

func NewPortalHandler(projects ports.ProjectRepository, tickets ports.TicketRepository) *PortalHandler {
	return &PortalHandler{projects: projects, tickets: tickets}
}

// Projects lists all projects.
//
// @Summary      List projects
// @Tags         portal
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Project
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /portal/projects [get]
func (h *PortalHandler) Projects(c echo.Context) error {
	projects, err := h.projects.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// Tickets lists all tickets.
//
// @Summary      List tickets
// @Tags         portal
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Ticket
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /portal/tickets [get]
func (h *PortalHandler) Tickets(c echo.Context) error {
	tickets, err := h.tickets.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tickets)
}
