// Command validate_database is a manual check for the Notion postings database.
// It verifies that the configured database exists and carries the required
// properties with the expected types.
//
// Usage:
//
//	go run cmd/tools/validate_database/main.go
//
// Requires NOTION_API_KEY and NOTION_DATABASE_JOB_APPLICATIONS_ID to be set.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonathan/notion-job-tracker/internal/config"
	"github.com/jonathan/notion-job-tracker/internal/notion"
	"github.com/jonathan/notion-job-tracker/internal/tracker"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	client := notion.NewClient(cfg.NotionAPIKey)
	svc := tracker.New(client, cfg.JobApplicationsDatabaseID, cfg.CompaniesDatabaseID)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fmt.Println("Checking postings database schema...")
	if err := svc.ValidateDatabase(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("OK: database has all required properties")
	if cfg.CompaniesDatabaseID == "" {
		fmt.Println("Note: companies database not configured; postings will be created without a Company relation")
	}
}
