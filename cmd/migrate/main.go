// Command migrate applies the embedded database migrations.
//
// Usage:
//
//	migrate
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/vncorpora/bicorpus-backend/internal/adapter/postgres"
	"github.com/vncorpora/bicorpus-backend/migrations"
)

func main() {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := postgres.Migrate(ctx, dsn, migrations.FS); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	fmt.Println("Migrations applied.")
}
