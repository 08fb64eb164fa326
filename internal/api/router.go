package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/bgrbarbosa/product-catalog/docs"
	"github.com/bgrbarbosa/product-catalog/internal/api/handler"
	"github.com/bgrbarbosa/product-catalog/internal/api/middleware"
	"github.com/bgrbarbosa/product-catalog/internal/core/domain"
	"github.com/bgrbarbosa/product-catalog/internal/core/ports"
	"github.com/bgrbarbosa/product-catalog/internal/infrastructure/http/handlers"
)

const metricsSubsystem = "catalog"

// Deps holds everything the HTTP layer needs. Readiness lists the checks
// served by /health/ready. A nil Metrics registry means the Prometheus default.
type Deps struct {
	Categories ports.CategoryService
	Products   ports.ProductService
	Users      ports.UserService
	Reports    ports.ReportService
	Email      ports.EmailService
	Tokens     ports.TokenVerifier

	Readiness        []handlers.Dependency
	ReadinessTimeout time.Duration

	Metrics *prometheus.Registry
	Logger  zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if d.Metrics != nil {
		registerer, gatherer = d.Metrics, d.Metrics
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  metricsSubsystem,
		Registerer: registerer,
	}))

	// --- Operational endpoints (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(d.ReadinessTimeout, d.Readiness...)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Handlers ---
	categoryHandler := handler.NewCategoryHandler(d.Categories, d.Reports)
	productHandler := handler.NewProductHandler(d.Products, d.Reports, d.Email)
	userHandler := handler.NewUserHandler(d.Users)

	auth := middleware.Auth(d.Tokens)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	userOnly := middleware.RBAC(domain.RoleUser)
	adminOrUser := middleware.RBAC(domain.RoleAdmin, domain.RoleUser)

	// --- Public ---
	e.POST("/user/login", userHandler.Login)

	// --- Categories ---
	categories := e.Group("/category", auth)
	categories.GET("", categoryHandler.List, userOnly)
	categories.GET("/report", categoryHandler.Report, userOnly)
	categories.GET("/:id", categoryHandler.Get, userOnly)
	categories.POST("", categoryHandler.Create, adminOrUser)
	categories.PUT("", categoryHandler.Update, adminOrUser)
	categories.DELETE("/:id", categoryHandler.Delete, adminOrUser)

	// --- Products ---
	products := e.Group("/product", auth)
	products.GET("", productHandler.List, userOnly)
	products.GET("/report", productHandler.Report, userOnly)
	products.GET("/:id", productHandler.Get, userOnly)
	products.POST("", productHandler.Create, adminOnly)
	products.PUT("", productHandler.Update, adminOnly)
	products.DELETE("/:id", productHandler.Delete, adminOnly)
	products.POST("/enviar-email", productHandler.SendEmail, adminOnly)

	// --- Users ---
	users := e.Group("/user", auth)
	users.GET("", userHandler.List, adminOrUser)
	users.GET("/:id", userHandler.Get, adminOrUser)
	users.POST("", userHandler.Create, adminOnly)
	users.PUT("", userHandler.Update, adminOnly)
	users.DELETE("/:id", userHandler.Delete, adminOnly)

	return e
}

// requestLogger writes one zerolog entry per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
