package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/luminastudio/backoffice/internal/api/metrics"
	"github.com/luminastudio/backoffice/internal/core/ports"
)

const resetRequestMessage = "If that email is registered, a reset link has been sent"

// AuthHandler exposes the credential lifecycle endpoints.
type AuthHandler struct {
	authService  ports.AuthService
	loginLimiter ports.RateLimiter
	resetLimiter ports.RateLimiter
}

// NewAuthHandler creates an AuthHandler. Either limiter may be nil, which
// disables rate limiting for that endpoint.
func NewAuthHandler(authService ports.AuthService, loginLimiter, resetLimiter ports.RateLimiter) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		loginLimiter: loginLimiter,
		resetLimiter: resetLimiter,
	}
}

// Register creates a customer account and returns a session token.
//
// @Summary      Register a new customer
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Register(c.Request().Context(), req.Email, req.Password, req.Name)
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, authResponse{Token: token, User: toUserResponse(user)})
}

// Login authenticates a customer and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.allow(c, h.loginLimiter, "login"); err != nil {
		return err
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("public", "failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("public", "success").Inc()
	return c.JSON(http.StatusOK, authResponse{Token: token, User: toUserResponse(user)})
}

// GuestLogin starts an anonymous guest session.
//
// @Summary      Start a guest session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Router       /auth/guest [post]
func (h *AuthHandler) GuestLogin(c echo.Context) error {
	token, user, err := h.authService.GuestLogin(c.Request().Context())
	if err != nil {
		return err
	}

	metrics.GuestSessionsTotal.Inc()
	return c.JSON(http.StatusOK, authResponse{Token: token, User: toUserResponse(user)})
}

// AdminLogin authenticates and reports the admin flag. The flag is advisory
// for the client; every admin endpoint re-derives it server-side.
//
// @Summary      Admin portal login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  portalAuthResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/admin/login [post]
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	return h.portalLogin(c, "admin")
}

// EmployeeLogin authenticates and reports the employee flag.
//
// @Summary      Employee portal login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  portalAuthResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/employee/login [post]
func (h *AuthHandler) EmployeeLogin(c echo.Context) error {
	return h.portalLogin(c, "employee")
}

func (h *AuthHandler) portalLogin(c echo.Context, portal string) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.allow(c, h.loginLimiter, "login"); err != nil {
		return err
	}

	token, user, roles, err := h.authService.PortalLogin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(portal, "failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues(portal, "success").Inc()

	resp := portalAuthResponse{Token: token, User: toUserResponse(user)}
	if portal == "admin" {
		resp.IsAdmin = &roles.IsAdmin
	} else {
		resp.IsEmployee = &roles.IsEmployee
	}
	return c.JSON(http.StatusOK, resp)
}

// Profile returns the authenticated caller's account record.
//
// @Summary      Fetch own profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /auth/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	// Re-fetched rather than echoed from the middleware, so an account deleted
	// mid-flight surfaces as 404 instead of stale data.
	user, err := h.authService.Profile(c.Request().Context(), ident.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// ForgotPassword accepts a reset request. The response is identical whether or
// not the email is registered.
//
// @Summary      Request a password reset
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      forgotPasswordRequest  true  "Account email"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.allow(c, h.resetLimiter, "forgot_password"); err != nil {
		return err
	}

	metrics.PasswordResetRequestsTotal.Inc()

	if err := h.authService.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Message: resetRequestMessage})
}

// ResetPassword completes a reset with a previously mailed token.
//
// @Summary      Complete a password reset
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      resetPasswordRequest  true  "Reset token and new password"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Router       /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ResetPassword(c.Request().Context(), req.Token, req.Password); err != nil {
		return err
	}

	metrics.PasswordResetsCompletedTotal.Inc()
	return c.JSON(http.StatusOK, successResponse{Success: true, Message: "Password updated"})
}

// allow consults the limiter keyed by client IP. A limiter backend failure
// fails open: availability of login beats strict throttling.
func (h *AuthHandler) allow(c echo.Context, limiter ports.RateLimiter, endpoint string) error {
	if limiter == nil {
		return nil
	}
	ok, err := limiter.Allow(c.Request().Context(), c.RealIP())
	if err != nil {
		return nil
	}
	if !ok {
		metrics.RateLimitedTotal.WithLabelValues(endpoint).Inc()
		return echo.NewHTTPError(http.StatusTooManyRequests, "too many attempts, try again later")
	}
	return nil
}
