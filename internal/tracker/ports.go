package tracker

import (
	"context"

	"github.com/jonathan/notion-job-tracker/internal/notion"
)

// Directory defines the external document-directory operations the upsert
// service depends on. Implemented by *notion.Client.
type Directory interface {
	// QueryDatabase returns the pages in a database matching the filter.
	QueryDatabase(ctx context.Context, databaseID string, filter notion.Filter) ([]notion.Page, error)

	// CreatePage creates a page in a database.
	CreatePage(ctx context.Context, params notion.CreatePageParams) (*notion.Page, error)

	// UpdatePageProperties replaces the given properties on an existing page.
	UpdatePageProperties(ctx context.Context, pageID string, properties notion.Properties) (*notion.Page, error)

	// ListBlockChildren returns the direct child blocks of a page.
	ListBlockChildren(ctx context.Context, blockID string) ([]notion.Block, error)

	// DeleteBlock archives a block.
	DeleteBlock(ctx context.Context, blockID string) error

	// AppendBlockChildren appends child blocks to a page.
	AppendBlockChildren(ctx context.Context, blockID string, children []notion.Block) error

	// RetrieveDatabase fetches a database's property schema.
	RetrieveDatabase(ctx context.Context, databaseID string) (*notion.Database, error)
}
