package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/roster-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health *handlers.HealthHandler
	Roster *handlers.RosterHandler
	Search *handlers.SearchHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	employees := app.Group("/employees")
	employees.Get("/", cfg.Roster.ListEmployees)
	employees.Post("/", cfg.Roster.CreateEmployee)
	employees.Get("/filters/:field", cfg.Roster.FieldValues)
	employees.Get("/:id", cfg.Roster.GetEmployee)
	employees.Put("/:id", cfg.Roster.ReplaceEmployee)

	app.Post("/search", cfg.Search.Search)
}
