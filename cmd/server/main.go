package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/reversilab/reversi/internal"
	"github.com/reversilab/reversi/internal/config"
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	config.SetLogLevel()

	// Setup app
	app, cfg := internal.SetupApp()

	// Start server
	address := cfg.ServerHost + ":" + cfg.ServerPort
	log.Fatal(app.Listen(address))
}
