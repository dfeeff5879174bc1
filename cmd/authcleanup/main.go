package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"tasktracker/internal/database"
	"tasktracker/internal/repository"
)

// Deletes refresh-token ledger rows past their expiry. Meant to run as a
// periodic job; the auth service also drops stale rows lazily on use.
func main() {
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	ledger := repository.NewRefreshTokenRepository(db)
	deleted, err := ledger.DeleteExpired(context.Background())
	if err != nil {
		log.Fatalf("cleanup refresh_tokens failed: %v", err)
	}

	log.Printf("auth cleanup completed: refresh_tokens=%d", deleted)
}
