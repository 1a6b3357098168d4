// Package notion provides a minimal client for the Notion REST API, covering
// the database query, page, and block operations the job tracker needs.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the base URL for the Notion API.
	DefaultBaseURL = "https://api.notion.com/v1"

	// DefaultTimeout bounds each API round trip.
	DefaultTimeout = 30 * time.Second

	// DefaultRateLimit is the default request rate (requests per second).
	// Notion's published average limit is 3 requests per second.
	DefaultRateLimit = 3

	// apiVersion is the Notion-Version header value this client speaks.
	apiVersion = "2022-06-28"
)

// Client is a Notion API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRateLimit sets a custom outbound rate limit.
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// NewClient creates a new Notion API client.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// do performs one API round trip, decoding the response into result when
// result is non-nil. Non-2xx responses decode into *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Notion-Version", apiVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// decodeAPIError converts a non-2xx response into an *APIError, falling back
// to the raw body when the error payload does not parse.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	data, err := io.ReadAll(resp.Body)
	if err != nil || json.Unmarshal(data, apiErr) != nil || apiErr.Code == "" {
		apiErr.Message = string(data)
	}
	apiErr.Status = resp.StatusCode

	return apiErr
}

type queryRequest struct {
	Filter *Filter `json:"filter,omitempty"`
}

type queryResponse struct {
	Results []Page `json:"results"`
}

// QueryDatabase returns the pages in a database matching the filter.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, filter Filter) ([]Page, error) {
	var result queryResponse
	path := fmt.Sprintf("/databases/%s/query", databaseID)
	if err := c.do(ctx, http.MethodPost, path, queryRequest{Filter: &filter}, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

type pageParent struct {
	DatabaseID string `json:"database_id"`
}

type createPageRequest struct {
	Parent     pageParent `json:"parent"`
	Icon       *Icon      `json:"icon,omitempty"`
	Properties Properties `json:"properties"`
	Children   []Block    `json:"children,omitempty"`
}

// CreatePage creates a page in a database.
func (c *Client) CreatePage(ctx context.Context, params CreatePageParams) (*Page, error) {
	req := createPageRequest{
		Parent:     pageParent{DatabaseID: params.ParentDatabaseID},
		Icon:       params.Icon,
		Properties: params.Properties,
		Children:   params.Children,
	}

	var page Page
	if err := c.do(ctx, http.MethodPost, "/pages", req, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

type updatePageRequest struct {
	Properties Properties `json:"properties"`
}

// UpdatePageProperties replaces the given properties on an existing page.
func (c *Client) UpdatePageProperties(ctx context.Context, pageID string, properties Properties) (*Page, error) {
	var page Page
	path := "/pages/" + pageID
	if err := c.do(ctx, http.MethodPatch, path, updatePageRequest{Properties: properties}, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

type blockChildrenResponse struct {
	Results []Block `json:"results"`
}

// ListBlockChildren returns the direct child blocks of a page or block.
func (c *Client) ListBlockChildren(ctx context.Context, blockID string) ([]Block, error) {
	var result blockChildrenResponse
	path := fmt.Sprintf("/blocks/%s/children", blockID)
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

// DeleteBlock archives a block.
func (c *Client) DeleteBlock(ctx context.Context, blockID string) error {
	return c.do(ctx, http.MethodDelete, "/blocks/"+blockID, nil, nil)
}

type appendChildrenRequest struct {
	Children []Block `json:"children"`
}

// AppendBlockChildren appends child blocks to a page or block.
func (c *Client) AppendBlockChildren(ctx context.Context, blockID string, children []Block) error {
	path := fmt.Sprintf("/blocks/%s/children", blockID)
	return c.do(ctx, http.MethodPatch, path, appendChildrenRequest{Children: children}, nil)
}

// RetrieveDatabase fetches a database's property schema.
func (c *Client) RetrieveDatabase(ctx context.Context, databaseID string) (*Database, error) {
	var db Database
	if err := c.do(ctx, http.MethodGet, "/databases/"+databaseID, nil, &db); err != nil {
		return nil, err
	}
	return &db, nil
}
