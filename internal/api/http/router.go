package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/userplatform/platform-services/internal/api/http/handlers"
)

// AuthRoutes bundles dependencies for the authentication service routes.
type AuthRoutes struct {
	Health *handlers.HealthHandler
	Auth   *handlers.AuthHandler
}

// RegisterAuthRoutes wires the authentication service HTTP surface.
func RegisterAuthRoutes(app *fiber.App, cfg AuthRoutes) {
	registerHealth(app, cfg.Health)

	api := app.Group("/api")
	api.Post("/register", cfg.Auth.Register)
	api.Post("/login", cfg.Auth.Login)
	api.Post("/validate", cfg.Auth.Validate)
}

// ProfileRoutes bundles dependencies for the profile service routes.
type ProfileRoutes struct {
	Health      *handlers.HealthHandler
	Profile     *handlers.ProfileHandler
	RequireAuth fiber.Handler
}

// RegisterProfileRoutes wires the profile service HTTP surface.
func RegisterProfileRoutes(app *fiber.App, cfg ProfileRoutes) {
	registerHealth(app, cfg.Health)

	api := app.Group("/api", cfg.RequireAuth)
	api.Get("/profile", cfg.Profile.Get)
	api.Put("/profile", cfg.Profile.Update)
}

// NotificationRoutes bundles dependencies for the notification service routes.
type NotificationRoutes struct {
	Health        *handlers.HealthHandler
	Notifications *handlers.NotificationHandler
	RequireAuth   fiber.Handler
}

// RegisterNotificationRoutes wires the notification service HTTP surface.
func RegisterNotificationRoutes(app *fiber.App, cfg NotificationRoutes) {
	registerHealth(app, cfg.Health)

	api := app.Group("/api", cfg.RequireAuth)
	api.Get("/notifications", cfg.Notifications.List)
	api.Get("/notifications/recent", cfg.Notifications.Recent)
	api.Post("/notifications/send", cfg.Notifications.Send)
}

// ReportRoutes bundles dependencies for the report service routes.
type ReportRoutes struct {
	Health      *handlers.HealthHandler
	Reports     *handlers.ReportHandler
	RequireAuth fiber.Handler
}

// RegisterReportRoutes wires the report service HTTP surface.
func RegisterReportRoutes(app *fiber.App, cfg ReportRoutes) {
	registerHealth(app, cfg.Health)

	api := app.Group("/api", cfg.RequireAuth)
	api.Post("/reports/generate", cfg.Reports.Generate)
	api.Get("/reports/list", cfg.Reports.List)
}

// Health endpoints sit outside the authenticated group on every service.
func registerHealth(app *fiber.App, health *handlers.HealthHandler) {
	app.Get("/health/live", health.Live)
	app.Get("/health/ready", health.Ready)
}
