package notion

import "strings"

// Page is a record in a Notion database.
type Page struct {
	Object string `json:"object,omitempty"`
	ID     string `json:"id"`
	URL    string `json:"url,omitempty"`
}

// Properties is the typed property bag submitted with page creates and updates.
type Properties map[string]PropertyValue

// PropertyValue holds exactly one Notion property payload. Only the field
// matching the database schema's property type may be set.
type PropertyValue struct {
	Title       []RichText     `json:"title,omitempty"`
	RichText    []RichText     `json:"rich_text,omitempty"`
	URL         string         `json:"url,omitempty"`
	Select      *SelectOption  `json:"select,omitempty"`
	MultiSelect []SelectOption `json:"multi_select,omitempty"`
	Number      *float64       `json:"number,omitempty"`
	Relation    []Relation     `json:"relation,omitempty"`
}

// RichText is a single rich-text segment; Notion caps each segment at 2000 characters.
type RichText struct {
	Type string `json:"type,omitempty"`
	Text *Text  `json:"text,omitempty"`
}

// Text is the plain-text content of a rich-text segment.
type Text struct {
	Content string `json:"content"`
}

// SelectOption names a select or multi-select value.
type SelectOption struct {
	Name string `json:"name"`
}

// Relation references another page by ID.
type Relation struct {
	ID string `json:"id"`
}

// Icon is a page or block icon.
type Icon struct {
	Type     string        `json:"type"`
	External *ExternalFile `json:"external,omitempty"`
}

// ExternalFile points at an externally hosted file.
type ExternalFile struct {
	URL string `json:"url"`
}

// ExternalIcon builds an external-file icon for the given URL.
func ExternalIcon(url string) *Icon {
	return &Icon{Type: "external", External: &ExternalFile{URL: url}}
}

// Block is a unit of page content. Only callout blocks are produced by this
// system; listing returns whatever block types the page holds.
type Block struct {
	Object  string   `json:"object,omitempty"`
	ID      string   `json:"id,omitempty"`
	Type    string   `json:"type,omitempty"`
	Callout *Callout `json:"callout,omitempty"`
}

// Callout is a styled block holding rich-text segments.
type Callout struct {
	RichText []RichText `json:"rich_text"`
	Icon     *Icon      `json:"icon,omitempty"`
	Color    string     `json:"color,omitempty"`
}

// Database describes a database's property schema.
type Database struct {
	Object     string                      `json:"object,omitempty"`
	ID         string                      `json:"id"`
	Properties map[string]DatabaseProperty `json:"properties"`
}

// DatabaseProperty is one typed property definition in a database schema.
type DatabaseProperty struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Filter is a single-property database query filter.
type Filter struct {
	Property string         `json:"property"`
	URL      *TextCondition `json:"url,omitempty"`
	Title    *TextCondition `json:"title,omitempty"`
}

// TextCondition matches a property value exactly.
type TextCondition struct {
	Equals string `json:"equals"`
}

// CreatePageParams holds everything needed to create a page in a database.
type CreatePageParams struct {
	ParentDatabaseID string
	Icon             *Icon
	Properties       Properties
	Children         []Block
}

// PageURL returns the browsable notion.so URL for a page ID.
func PageURL(pageID string) string {
	return "https://www.notion.so/" + strings.ReplaceAll(pageID, "-", "")
}
