// Package main provides the entry point for the job tracker HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "job_tracker",
	Short: "LinkedIn-to-Notion job tracker API server",
	Long:  "Job Tracker receives scraped job postings from the browser extension and saves them into a Notion database, with duplicate detection and company linking.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
