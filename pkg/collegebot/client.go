// Package collegebot provides the public Go SDK for the college bot API.
package collegebot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client is the public SDK client for the college bot API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientConfig holds client configuration.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// NewClient creates a new college bot client.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8090"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// QueryRequest represents a chat query request.
type QueryRequest struct {
	Question string `json:"question"`
}

// Entities holds the entities the server extracted from the question.
type Entities struct {
	Colleges  []string `json:"colleges,omitempty"`
	Locations []string `json:"locations,omitempty"`
	Course    string   `json:"course,omitempty"`
	FeeMin    int      `json:"feeMin,omitempty"`
	FeeMax    int      `json:"feeMax,omitempty"`
}

// QueryResponse represents a chat query response.
type QueryResponse struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Intent      string   `json:"intent"`
	Answer      string   `json:"answer"`
	Entities    Entities `json:"entities"`
	Suggestions []string `json:"suggestions,omitempty"`
	CacheHit    bool     `json:"cacheHit"`
	LatencyMs   int64    `json:"latencyMs"`
}

// College is one catalog entry.
type College struct {
	Name           string `json:"name"`
	City           string `json:"city"`
	State          string `json:"state"`
	CoursesOffered string `json:"coursesOffered"`
	CourseFee      string `json:"courseFee"`
	Website        string `json:"website"`
}

// CollegesResponse is the catalog listing response.
type CollegesResponse struct {
	Count    int       `json:"count"`
	Colleges []College `json:"colleges"`
}

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// Query asks the bot a question.
func (c *Client) Query(ctx context.Context, req QueryRequest) (*QueryResponse, error) {
	var resp QueryResponse
	if err := c.post(ctx, "/api/v1/chat/query", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Colleges lists the college catalog. An empty location lists everything.
func (c *Client) Colleges(ctx context.Context, location string) (*CollegesResponse, error) {
	path := "/api/v1/colleges"
	if location != "" {
		path += "?location=" + url.QueryEscape(location)
	}
	var resp CollegesResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Health reports whether the API is up.
func (c *Client) Health(ctx context.Context) error {
	return c.get(ctx, "/health", nil)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
