package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("NOTION_API_KEY", "secret-key")
	t.Setenv("NOTION_DATABASE_JOB_APPLICATIONS_ID", "postings-db")
	t.Setenv("NOTION_DATABASE_COMPANIES_ID", "")
	t.Setenv("PORT", "")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "secret-key", cfg.NotionAPIKey)
	assert.Equal(t, "postings-db", cfg.JobApplicationsDatabaseID)
	assert.Empty(t, cfg.CompaniesDatabaseID)
	assert.Equal(t, DefaultPort, cfg.Port)
}

func TestLoad_PortOverride(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "8080")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
}

func TestLoad_InvalidPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "not-a-number")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid PORT value")
}

func TestValidate(t *testing.T) {
	cfg := &Config{NotionAPIKey: "secret-key", JobApplicationsDatabaseID: "postings-db"}
	assert.NoError(t, cfg.Validate())

	cfg = &Config{JobApplicationsDatabaseID: "postings-db"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOTION_API_KEY")

	cfg = &Config{NotionAPIKey: "secret-key"}
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOTION_DATABASE_JOB_APPLICATIONS_ID")
}

func TestValidate_CompaniesDatabaseOptional(t *testing.T) {
	cfg := &Config{
		NotionAPIKey:              "secret-key",
		JobApplicationsDatabaseID: "postings-db",
	}
	assert.NoError(t, cfg.Validate())
}
