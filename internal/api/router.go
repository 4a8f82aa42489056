package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/billigi/lending-api/internal/api/handler"
	"github.com/billigi/lending-api/internal/api/middleware"
	"github.com/billigi/lending-api/internal/core/ports"
)

// Deps holds everything the router needs. Registerer and Gatherer default to
// the global Prometheus registry when nil.
type Deps struct {
	Auth         ports.AuthService
	Items        ports.ItemService
	Reports      ports.ReportService
	HealthChecks map[string]handler.DependencyCheck
	Cookie       handler.CookieOptions
	CORSOrigins  []string
	Logger       zerolog.Logger
	Registerer   prometheus.Registerer
	Gatherer     prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     d.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "billigi",
		Registerer: d.Registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	authHandler := handler.NewAuthHandler(d.Auth, d.Cookie)
	itemHandler := handler.NewItemHandler(d.Items)
	reportHandler := handler.NewReportHandler(d.Reports)
	requireSession := middleware.Session(d.Auth, d.Cookie.Name)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)

	// --- Listings: reads are public, writes need a session ---
	apiGroup := e.Group("/api")
	apiGroup.GET("/items", itemHandler.List)
	apiGroup.POST("/items", itemHandler.Create, requireSession)
	apiGroup.PATCH("/items/:id", itemHandler.Claim, requireSession)
	apiGroup.DELETE("/items/:id", itemHandler.Delete, requireSession)

	apiGroup.GET("/lostfound", reportHandler.List)
	apiGroup.POST("/lostfound", reportHandler.Create, requireSession)
	apiGroup.DELETE("/lostfound/:id", reportHandler.Delete, requireSession)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.HealthChecks)

	e.GET("/health", healthHandler.Liveness)            // liveness
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness

	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
