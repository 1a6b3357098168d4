package notion

import (
	"errors"
	"fmt"
)

// Error codes returned by the Notion API that callers branch on.
const (
	CodeUnauthorized   = "unauthorized"
	CodeObjectNotFound = "object_not_found"
	CodeRateLimited    = "rate_limited"
)

// APIError is a coded error response from the Notion API.
type APIError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion: %s (HTTP %d): %s", e.Code, e.Status, e.Message)
}

// IsUnauthorized reports whether err is a Notion authentication failure.
func IsUnauthorized(err error) bool {
	return hasCode(err, CodeUnauthorized)
}

// IsNotFound reports whether err is a Notion object-not-found failure.
func IsNotFound(err error) bool {
	return hasCode(err, CodeObjectNotFound)
}

// IsRateLimited reports whether err is a Notion rate-limit failure.
func IsRateLimited(err error) bool {
	return hasCode(err, CodeRateLimited)
}

func hasCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}
