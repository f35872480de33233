package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/luminastudio/backoffice/docs"
	"github.com/luminastudio/backoffice/internal/api/handler"
	"github.com/luminastudio/backoffice/internal/api/middleware"
	"github.com/luminastudio/backoffice/internal/core/ports"
	"github.com/luminastudio/backoffice/internal/core/service"
	"github.com/luminastudio/backoffice/internal/infrastructure/config"
	mongodb "github.com/luminastudio/backoffice/internal/infrastructure/db/mongo"
	redisdb "github.com/luminastudio/backoffice/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	db *mongo.Database,
	rdb *goredis.Client,
	cfg *config.Config,
	log zerolog.Logger,
	mailer ports.Mailer,
	welcomeQueue ports.MailQueue,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("backoffice"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	employeeRepo := mongodb.NewEmployeeRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	ticketRepo := mongodb.NewTicketRepository(db)

	// --- Core services ---
	hasher := service.NewPasswordHasher(0)
	codec := service.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)
	identityService := service.NewIdentityService(userRepo, employeeRepo, cfg.AdminAllowList())
	authService := service.NewAuthService(
		userRepo, identityService, hasher, codec,
		mailer, welcomeQueue, cfg.ResetTokenTTL, cfg.ResetBaseURL,
	)
	employeeService := service.NewEmployeeService(userRepo, employeeRepo, projectRepo, ticketRepo, hasher, log)

	// --- Abuse limiters ---
	loginLimiter := redisdb.NewRateLimiter(rdb, "login", 10, time.Minute)
	resetLimiter := redisdb.NewRateLimiter(rdb, "forgot_password", 5, time.Minute)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, loginLimiter, resetLimiter)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	portalHandler := handler.NewPortalHandler(projectRepo, ticketRepo)
	contactHandler := handler.NewContactHandler(mailer)

	authenticate := middleware.Authenticate(codec, identityService)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/guest", authHandler.GuestLogin)
	e.POST("/auth/admin/login", authHandler.AdminLogin)
	e.POST("/auth/employee/login", authHandler.EmployeeLogin)
	e.POST("/auth/forgot-password", authHandler.ForgotPassword)
	e.POST("/auth/reset-password", authHandler.ResetPassword)
	e.POST("/contact", contactHandler.Submit)

	// --- Authenticated routes ---
	e.GET("/auth/profile", authHandler.Profile, authenticate)

	// --- Admin portal ---
	admin := e.Group("/admin", authenticate, middleware.RequireAdmin())
	admin.POST("/employees", employeeHandler.Provision)
	admin.GET("/employees", employeeHandler.List)
	admin.GET("/employees/:id", employeeHandler.Get)
	admin.PUT("/employees/:id", employeeHandler.Update)
	admin.DELETE("/employees/:id", employeeHandler.Delete)

	// --- Staff portal ---
	portal := e.Group("/portal", authenticate, middleware.RequireEmployee())
	portal.GET("/projects", portalHandler.Projects)
	portal.GET("/tickets", portalHandler.Tickets)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
