package tracker

import (
	"github.com/jonathan/notion-job-tracker/internal/notion"
	"github.com/jonathan/notion-job-tracker/internal/types"
)

const (
	// maxRichTextChars is Notion's per-segment rich text length limit.
	maxRichTextChars = 2000

	pageIconURL        = "https://www.notion.so/icons/share_gray.svg"
	companyIconURL     = "https://www.notion.so/icons/factory_gray.svg"
	descriptionIconURL = "https://www.notion.so/icons/description_gray.svg"

	// Source and Origin are fixed values, independent of the request's
	// origin field. The request value is validated but not stored.
	sourceValue = "LinkedIn"
	originValue = "Applied"
)

// buildProperties maps a validated request into the postings database schema.
// Optional properties are omitted when their source field is absent or empty.
// The Company relation is omitted when companyID is empty so the posting is
// never linked to a page that does not exist.
func buildProperties(req *types.JobPostingRequest, companyID string) notion.Properties {
	properties := notion.Properties{
		"Position": {
			Title: []notion.RichText{textSegment(req.Position)},
		},
		"Posting URL": {
			URL: req.PostingURL,
		},
		"Source": {
			Select: &notion.SelectOption{Name: sourceValue},
		},
		"Origin": {
			Select: &notion.SelectOption{Name: originValue},
		},
	}

	if companyID != "" {
		properties["Company"] = notion.PropertyValue{
			Relation: []notion.Relation{{ID: companyID}},
		}
	}
	if req.Match != "" {
		properties["Match"] = notion.PropertyValue{
			Select: &notion.SelectOption{Name: req.Match},
		}
	}
	if req.WorkArrangement != "" {
		properties["Work Arrangement"] = notion.PropertyValue{
			Select: &notion.SelectOption{Name: req.WorkArrangement},
		}
	}
	if req.Demand != "" {
		properties["Demand"] = notion.PropertyValue{
			Select: &notion.SelectOption{Name: req.Demand},
		}
	}
	if req.Budget != nil {
		properties["Budget"] = notion.PropertyValue{
			Number: req.Budget,
		}
	}
	if req.City != "" {
		// City is multi-select in the postings schema.
		properties["City"] = notion.PropertyValue{
			MultiSelect: []notion.SelectOption{{Name: req.City}},
		}
	}
	if req.Country != "" {
		properties["Country"] = notion.PropertyValue{
			Select: &notion.SelectOption{Name: req.Country},
		}
	}

	return properties
}

// descriptionBlocks packs a job description into a single callout block whose
// rich text segments each stay within Notion's length limit. Returns nil for
// an empty description.
func descriptionBlocks(description string) []notion.Block {
	if description == "" {
		return nil
	}

	chunks := chunkText(description, maxRichTextChars)
	segments := make([]notion.RichText, 0, len(chunks))
	for _, chunk := range chunks {
		segments = append(segments, textSegment(chunk))
	}

	return []notion.Block{{
		Object: "block",
		Type:   "callout",
		Callout: &notion.Callout{
			RichText: segments,
			Icon:     notion.ExternalIcon(descriptionIconURL),
			Color:    "default",
		},
	}}
}

// chunkText splits s into chunks of at most size characters. Concatenating
// the chunks reproduces s exactly. Boundaries count runes, not bytes, since
// Notion's segment limit counts characters.
func chunkText(s string, size int) []string {
	runes := []rune(s)
	chunks := make([]string, 0, (len(runes)+size-1)/size)
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}

func textSegment(content string) notion.RichText {
	return notion.RichText{
		Type: "text",
		Text: &notion.Text{Content: content},
	}
}
