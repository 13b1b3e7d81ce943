package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-analytics/internal/api/http/handlers"
	"github.com/spec-kit/ticket-analytics/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Imports        *handlers.ImportsHandler
	Records        *handlers.RecordsHandler
	Analytics      *handlers.AnalyticsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	protected := app.Group("", cfg.AuthMiddleware.Handle)

	imports := protected.Group("/imports")
	imports.Post("", cfg.Imports.Upload)
	imports.Get("", cfg.Imports.List)
	imports.Get("/:id", cfg.Imports.Get)
	imports.Delete("/:id", cfg.Imports.Delete)

	protected.Get("/records", cfg.Records.List)

	analytics := protected.Group("/analytics")
	analytics.Get("/breakdown", cfg.Analytics.Breakdown)
	analytics.Get("/trend", cfg.Analytics.Trend)
	analytics.Get("/insights", cfg.Analytics.Insights)
	analytics.Get("/export", cfg.Analytics.Export)
}
