// Package config provides environment-variable configuration for the job tracker.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// DefaultPort is the port the API listens on when PORT is not set.
const DefaultPort = 3000

// Config holds the application configuration read from the environment.
type Config struct {
	// NotionAPIKey is the Notion integration token. Required.
	NotionAPIKey string

	// JobApplicationsDatabaseID is the postings database. Required.
	JobApplicationsDatabaseID string

	// CompaniesDatabaseID is the companies database. Optional; when empty,
	// postings are created without a Company relation.
	CompaniesDatabaseID string

	// Port is the HTTP listen port.
	Port int
}

// Load reads configuration from environment variables. Call Validate to
// check required values are present.
func Load() (*Config, error) {
	cfg := &Config{
		NotionAPIKey:              os.Getenv("NOTION_API_KEY"),
		JobApplicationsDatabaseID: os.Getenv("NOTION_DATABASE_JOB_APPLICATIONS_ID"),
		CompaniesDatabaseID:       os.Getenv("NOTION_DATABASE_COMPANIES_ID"),
		Port:                      DefaultPort,
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT value %q: %w", v, err)
		}
		cfg.Port = port
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.NotionAPIKey == "" {
		return fmt.Errorf("NOTION_API_KEY environment variable is required")
	}
	if c.JobApplicationsDatabaseID == "" {
		return fmt.Errorf("NOTION_DATABASE_JOB_APPLICATIONS_ID environment variable is required")
	}
	// The companies database is optional: company linking degrades to a no-op.
	return nil
}
