package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/mediconnect/clinic-api/internal/api/handler"
	"github.com/mediconnect/clinic-api/internal/api/middleware"
	"github.com/mediconnect/clinic-api/internal/core/service"
	"github.com/mediconnect/clinic-api/internal/infrastructure/config"
	"github.com/mediconnect/clinic-api/internal/infrastructure/db/postgres"
	"github.com/mediconnect/clinic-api/pkg/hasher"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	e.Use(echoprometheus.NewMiddleware("clinic"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	passwordHasher := hasher.NewBcrypt(cfg.BcryptCost)
	authService := service.NewAuthService(userRepo, passwordHasher)
	authHandler := handler.NewAuthHandler(authService, log)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.SignUp)
	e.POST("/auth/signin", authHandler.SignIn)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the store reachable?

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
