package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/notion-job-tracker/internal/notion"
)

// rateLimitRetryAfter is the retry hint (in seconds) returned with 429 responses.
const rateLimitRetryAfter = 60

// HTTPStatus returns the appropriate HTTP status code for an upsert error.
func HTTPStatus(err error) int {
	var apiErr *notion.APIError
	if !errors.As(err, &apiErr) {
		return http.StatusInternalServerError
	}

	switch apiErr.Code {
	case notion.CodeUnauthorized:
		return http.StatusUnauthorized
	case notion.CodeObjectNotFound:
		return http.StatusNotFound
	case notion.CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// notionErrorResponse maps an upsert failure onto the API error contract.
// Internal detail is never leaked; only the coded category reaches the client.
func (s *Server) notionErrorResponse(w http.ResponseWriter, err error) {
	switch HTTPStatus(err) {
	case http.StatusUnauthorized:
		s.errorResponse(w, http.StatusUnauthorized, "Notion authentication failed")
	case http.StatusNotFound:
		s.errorResponse(w, http.StatusNotFound, "Notion database not found")
	case http.StatusTooManyRequests:
		s.jsonResponse(w, http.StatusTooManyRequests, map[string]any{
			"error":       "Rate limit exceeded",
			"retry_after": rateLimitRetryAfter,
		})
	default:
		s.errorResponse(w, http.StatusInternalServerError, "Internal server error")
	}
}
