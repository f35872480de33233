package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/luminastudio/backoffice/internal/core/ports"
)

// ContactHandler forwards website contact-form submissions to the site inbox.
type ContactHandler struct {
	mailer ports.Mailer
}

func NewContactHandler(mailer ports.Mailer) *ContactHandler {
	return &ContactHandler{mailer: mailer}
}

type contactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// Submit handles POST /contact.
//
// @Summary      Submit the contact form
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Contact message"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Router       /contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.mailer.SendContactMessage(c.Request().Context(), req.Name, req.Email, req.Message); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Message: "Thanks, we'll be in touch"})
}
