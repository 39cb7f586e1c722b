package http

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/storefront/ecommerce-services/docs"
	"github.com/storefront/ecommerce-services/internal/api/middleware"
	"github.com/storefront/ecommerce-services/internal/infrastructure/http/handlers"
)

// Options configures the operational surface shared by every service.
type Options struct {
	Logger       zerolog.Logger
	ErrorHandler echo.HTTPErrorHandler

	// Liveness backs GET /health; Readiness backs GET /health/ready.
	Liveness  handlers.Check
	Readiness map[string]handlers.Check

	// Registry overrides the default Prometheus registry. Tests use a fresh
	// one so request metrics can be registered more than once per process.
	Registry *prometheus.Registry
}

// NewRouter builds the Echo instance with global middleware, health probes,
// /metrics and /swagger registered. Domain routes are added by the caller.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	if opts.ErrorHandler != nil {
		e.HTTPErrorHandler = opts.ErrorHandler
	}

	promConfig := echoprometheus.MiddlewareConfig{
		Subsystem: "http",
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}
	metricsHandler := echoprometheus.NewHandler()
	if opts.Registry != nil {
		promConfig.Registerer = opts.Registry
		metricsHandler = echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: opts.Registry})
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(opts.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(promConfig))

	// --- Health probes (no auth required) ---
	e.GET("/health", handlers.NewHealthHandler(opts.Liveness).Liveness)
	e.GET("/health/ready", handlers.NewReadinessHandler(opts.Readiness).Readiness)

	e.GET("/metrics", metricsHandler)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
