package routes

import (
	"bikedemand/handlers"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App, h *handlers.Handler) {
	// --- Page ---
	app.Get("/", h.HandleIndex)
	app.Post("/", h.HandleSubmitForm)

	// --- JSON API ---
	api := app.Group("/api/v1")
	api.Get("/health", handlers.HandleHealth)
	api.Get("/options", handlers.HandleGetOptions)

	api.Get("/form", h.HandleGetForm)
	api.Delete("/form", h.HandleResetForm)
	api.Post("/predict", h.HandlePredict)
}
