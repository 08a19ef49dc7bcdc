package main

import (
	"bikedemand/config"
	"log"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Load configuration
	cfg := config.Load()
	log.Printf("Using prediction API at %s", cfg.ModelAPIURL)

	app := newApp(cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.Port))
}
