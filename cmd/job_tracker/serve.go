package main

import (
	"fmt"

	"github.com/jonathan/notion-job-tracker/internal/config"
	"github.com/jonathan/notion-job-tracker/internal/notion"
	"github.com/jonathan/notion-job-tracker/internal/server"
	"github.com/jonathan/notion-job-tracker/internal/tracker"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the job posting save, check, and health endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	client := notion.NewClient(cfg.NotionAPIKey)
	svc := tracker.New(client, cfg.JobApplicationsDatabaseID, cfg.CompaniesDatabaseID)
	srv := server.New(server.Config{Port: cfg.Port}, svc)

	return srv.Start()
}
