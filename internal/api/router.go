package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/paydash/payment-tracker/internal/api/handler"
	"github.com/paydash/payment-tracker/internal/api/middleware"
	"github.com/paydash/payment-tracker/internal/core/domain"
	"github.com/paydash/payment-tracker/internal/core/ports"
)

// Dependencies carries everything the router needs. Construction happens in
// main so the same service instances can be used for startup tasks (admin
// seeding) and request handling.
type Dependencies struct {
	Pool     *pgxpool.Pool
	Redis    *redis.Client
	Tokens   ports.TokenService
	Auth     ports.AuthService
	Payments ports.PaymentService
	Stats    ports.StatsService
	Logger   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("payment_tracker"))

	authHandler := handler.NewAuthHandler(d.Auth)
	userHandler := handler.NewUserHandler(d.Auth)
	paymentHandler := handler.NewPaymentHandler(d.Payments, d.Stats)

	authn := middleware.Auth(d.Tokens)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)

	// --- User routes (admin only) ---
	users := e.Group("/users", authn, adminOnly)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)

	// --- Payment routes (any authenticated role) ---
	payments := e.Group("/payments", authn)
	payments.GET("", paymentHandler.List)
	payments.GET("/stats", paymentHandler.Stats)
	payments.GET("/:id", paymentHandler.Get)
	payments.POST("", paymentHandler.Create)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Pool, d.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
