package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/autobatya/workshop-api/internal/app/api"
)

func main() {
	// Missing .env is fine; the process falls back to real env vars.
	_ = godotenv.Load()
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("workshop api: %v", err)
	}
}
