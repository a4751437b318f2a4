package main

import (
	"os"

	"shoot-calendar-api/core/logger"
	"shoot-calendar-api/core/server"
)

// @title Shoot Calendar API
// @version 1.0
// @description Browse and filter shooting competitions, mark the ones you plan to attend and subscribe to them as a calendar feed.

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", "error", err)
		os.Exit(1)
	}
}
