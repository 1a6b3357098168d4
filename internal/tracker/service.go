// Package tracker implements the posting upsert service: duplicate detection,
// company lookup-or-create, and create/update of job posting pages in the
// external directory.
package tracker

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/notion-job-tracker/internal/notion"
	"github.com/jonathan/notion-job-tracker/internal/types"
)

// Service orchestrates posting creation and updates against the directory.
// Construct once at startup and inject into handlers.
type Service struct {
	dir                 Directory
	postingsDatabaseID  string
	companiesDatabaseID string
}

// New creates a Service. companiesDatabaseID may be empty, in which case
// company resolution is skipped and postings are created without a Company
// relation.
func New(dir Directory, postingsDatabaseID, companiesDatabaseID string) *Service {
	return &Service{
		dir:                 dir,
		postingsDatabaseID:  postingsDatabaseID,
		companiesDatabaseID: companiesDatabaseID,
	}
}

// CheckDuplicate returns the page ID of an existing posting with the exact
// given URL, or empty when none exists. Lookup failures are logged and
// treated as "no duplicate": creation proceeds rather than blocking on a
// failed secondary read.
func (s *Service) CheckDuplicate(ctx context.Context, postingURL string) string {
	pages, err := s.dir.QueryDatabase(ctx, s.postingsDatabaseID, notion.Filter{
		Property: "Posting URL",
		URL:      &notion.TextCondition{Equals: postingURL},
	})
	if err != nil {
		log.Printf("[tracker] duplicate check failed for %s: %v", postingURL, err)
		return ""
	}
	if len(pages) == 0 {
		return ""
	}
	return pages[0].ID
}

// FindOrCreateCompany returns the page ID for the named company, creating it
// on first reference. Returns empty when no companies database is configured
// or when lookup/creation fails; callers proceed without the company link.
func (s *Service) FindOrCreateCompany(ctx context.Context, name string) string {
	if s.companiesDatabaseID == "" {
		log.Printf("[tracker] companies database not configured, skipping company lookup")
		return ""
	}

	pages, err := s.dir.QueryDatabase(ctx, s.companiesDatabaseID, notion.Filter{
		Property: "Name",
		Title:    &notion.TextCondition{Equals: name},
	})
	if err != nil {
		log.Printf("[tracker] company lookup failed for %q: %v", name, err)
		return ""
	}
	if len(pages) > 0 {
		return pages[0].ID
	}

	page, err := s.dir.CreatePage(ctx, notion.CreatePageParams{
		ParentDatabaseID: s.companiesDatabaseID,
		Icon:             notion.ExternalIcon(companyIconURL),
		Properties: notion.Properties{
			"Name": {
				Title: []notion.RichText{textSegment(name)},
			},
		},
	})
	if err != nil {
		log.Printf("[tracker] company creation failed for %q: %v", name, err)
		return ""
	}

	log.Printf("[tracker] created company %q (ID: %s)", name, page.ID)
	return page.ID
}

// CreatePosting resolves the company, builds the property bag, and creates
// the posting page with the chunked description attached. Creation failures
// propagate to the caller.
func (s *Service) CreatePosting(ctx context.Context, req *types.JobPostingRequest) (*notion.Page, error) {
	companyID := s.FindOrCreateCompany(ctx, req.Company)

	log.Printf("[tracker] creating posting for %q at %q", req.Position, req.Company)

	page, err := s.dir.CreatePage(ctx, notion.CreatePageParams{
		ParentDatabaseID: s.postingsDatabaseID,
		Icon:             notion.ExternalIcon(pageIconURL),
		Properties:       buildProperties(req, companyID),
		Children:         descriptionBlocks(req.JobDescription),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create posting page: %w", err)
	}
	return page, nil
}

// UpdatePosting updates an existing posting's properties. When a description
// is supplied, the page's current content blocks are deleted (individual
// deletion failures are logged and tolerated) and one fresh callout block is
// appended. Property-update and append failures propagate.
func (s *Service) UpdatePosting(ctx context.Context, pageID string, req *types.JobPostingRequest) (*notion.Page, error) {
	companyID := s.FindOrCreateCompany(ctx, req.Company)

	log.Printf("[tracker] updating posting %s", pageID)

	page, err := s.dir.UpdatePageProperties(ctx, pageID, buildProperties(req, companyID))
	if err != nil {
		return nil, fmt.Errorf("failed to update posting page: %w", err)
	}

	if req.JobDescription != "" {
		blocks, err := s.dir.ListBlockChildren(ctx, pageID)
		if err != nil {
			return nil, fmt.Errorf("failed to list content blocks: %w", err)
		}

		for _, block := range blocks {
			if err := s.dir.DeleteBlock(ctx, block.ID); err != nil {
				log.Printf("[tracker] could not delete block %s: %v", block.ID, err)
			}
		}

		if err := s.dir.AppendBlockChildren(ctx, pageID, descriptionBlocks(req.JobDescription)); err != nil {
			return nil, fmt.Errorf("failed to append description block: %w", err)
		}
	}

	return page, nil
}

// requiredProperty pairs a postings-database property name with its accepted
// schema types.
type requiredProperty struct {
	name  string
	types []string
}

var requiredProperties = []requiredProperty{
	{name: "Position", types: []string{"title"}},
	{name: "Company", types: []string{"rich_text", "relation"}},
	{name: "Posting URL", types: []string{"url"}},
	{name: "Origin", types: []string{"select"}},
}

// ValidateDatabase confirms the postings database exists and carries the
// required properties with matching types.
func (s *Service) ValidateDatabase(ctx context.Context) error {
	db, err := s.dir.RetrieveDatabase(ctx, s.postingsDatabaseID)
	if err != nil {
		return fmt.Errorf("failed to retrieve database schema: %w", err)
	}

	for _, required := range requiredProperties {
		prop, ok := db.Properties[required.name]
		if !ok {
			return fmt.Errorf("missing required property: %s", required.name)
		}
		if !containsType(required.types, prop.Type) {
			return fmt.Errorf("property %s must be type %s", required.name, joinOr(required.types))
		}
	}

	return nil
}

func containsType(types []string, t string) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

func joinOr(types []string) string {
	switch len(types) {
	case 1:
		return types[0]
	default:
		out := types[0]
		for _, t := range types[1:] {
			out += " or " + t
		}
		return out
	}
}
