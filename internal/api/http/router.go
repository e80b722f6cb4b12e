package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/notes-service/internal/api/http/handlers"
	"github.com/spec-kit/notes-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Notes          *handlers.NotesHandler
	Transcriptions *handlers.TranscriptionsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Signup and signin are public; everything
// else sits behind the bearer-token middleware.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/signup", cfg.Auth.Signup)
	app.Post("/signin", cfg.Auth.Signin)

	protected := app.Group("", cfg.AuthMiddleware.Handle)
	protected.Get("/me", cfg.Auth.Me)
	protected.Post("/notes", cfg.Notes.Create)
	protected.Get("/notes", cfg.Notes.List)

	if cfg.Transcriptions != nil {
		protected.Post("/transcriptions", cfg.Transcriptions.Upload)
		protected.Get("/transcriptions/:id", cfg.Transcriptions.Get)
	}
}
