package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/notion-job-tracker/internal/notion"
	"github.com/jonathan/notion-job-tracker/internal/types"
)

// SaveJobPostingResponse is the response body for successful creates and updates.
type SaveJobPostingResponse struct {
	Message       string                   `json:"message"`
	NotionPageID  string                   `json:"notion_page_id"`
	NotionPageURL string                   `json:"notion_page_url"`
	JobData       *types.JobPostingRequest `json:"job_data"`
}

// handleSaveJobPosting creates a posting page, or updates one in place when
// the request carries a page_id. The duplicate check runs only on the create
// path; updates trust the caller-supplied identifier.
func (s *Server) handleSaveJobPosting(w http.ResponseWriter, r *http.Request) {
	var req types.JobPostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	log.Printf("Received job posting request: %q at %q", req.Position, req.Company)

	if err := req.Validate(); err != nil {
		log.Printf("Validation failed: %v", err)
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()

	if req.PageID != "" {
		if _, err := uuid.Parse(req.PageID); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid page_id format")
			return
		}

		page, err := s.tracker.UpdatePosting(ctx, req.PageID, &req)
		if err != nil {
			log.Printf("Update failed for page %s: %v", req.PageID, err)
			s.notionErrorResponse(w, err)
			return
		}

		s.jsonResponse(w, http.StatusOK, SaveJobPostingResponse{
			Message:       "Job posting updated successfully",
			NotionPageID:  page.ID,
			NotionPageURL: page.URL,
			JobData:       &req,
		})
		return
	}

	if existingID := s.tracker.CheckDuplicate(ctx, req.PostingURL); existingID != "" {
		log.Printf("Duplicate job posting detected: %s", req.PostingURL)
		s.jsonResponse(w, http.StatusConflict, map[string]any{
			"error":             "Job posting already saved",
			"duplicate_field":   "posting_url",
			"existing_page_id":  existingID,
			"existing_page_url": notion.PageURL(existingID),
		})
		return
	}

	page, err := s.tracker.CreatePosting(ctx, &req)
	if err != nil {
		log.Printf("Create failed: %v", err)
		s.notionErrorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, SaveJobPostingResponse{
		Message:       "Job posting saved successfully",
		NotionPageID:  page.ID,
		NotionPageURL: page.URL,
		JobData:       &req,
	})
}

// handleCheckJobPosting reports whether a posting with the given URL already
// exists. Directory failures surface as "does not exist"; the extension only
// uses this to pre-fill its duplicate hint.
func (s *Server) handleCheckJobPosting(w http.ResponseWriter, r *http.Request) {
	postingURL := r.URL.Query().Get("posting_url")
	if postingURL == "" {
		s.errorResponse(w, http.StatusBadRequest, "posting_url parameter is required")
		return
	}

	if pageID := s.tracker.CheckDuplicate(r.Context(), postingURL); pageID != "" {
		s.jsonResponse(w, http.StatusOK, map[string]any{
			"exists":   true,
			"page_id":  pageID,
			"page_url": notion.PageURL(pageID),
		})
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"exists": false})
}

// handleHealth validates the postings database schema and reports readiness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.tracker.ValidateDatabase(r.Context()); err != nil {
		log.Printf("Health check failed: %v", err)
		s.jsonResponse(w, http.StatusInternalServerError, map[string]any{
			"status":             "unhealthy",
			"notion_connected":   false,
			"database_validated": false,
			"error":              err.Error(),
		})
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":             "healthy",
		"notion_connected":   true,
		"database_validated": true,
	})
}
