// @title           TalentHub API
// @version         1.0
// @description     REST backend for the TalentHub training and recruitment platform.
// @host            localhost:4000
// @BasePath        /api/v1

package main

import (
	"github.com/joho/godotenv"

	"talenthub_backend/internal/app"
)

func main() {
	// Missing .env is fine, config falls back to config.yaml.
	_ = godotenv.Load()

	app.Run()
}
