package main

import (
	"bikedemand/config"
	"bikedemand/handlers"
	"bikedemand/middleware"
	"bikedemand/pages"
	"bikedemand/predictor"
	"bikedemand/routes"
	"bikedemand/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// newApp builds the Fiber app from cfg: prediction client, sessions, middleware and routes.
func newApp(cfg config.Config) *fiber.App {
	client := predictor.NewClient(cfg.ModelAPIURL, cfg.ModelAPITimeout)
	registry := pages.NewRegistry(client, cfg.SessionTTL, cfg.MaxSessions)
	sessions := middleware.NewSessionStore(cfg.SessionTTL)

	app := fiber.New(fiber.Config{
		AppName: "UrbanMove Bike Demand",
		Views:   views.NewEngine(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
	}))

	routes.SetupRoutes(app, handlers.NewHandler(registry, sessions))
	return app
}
