package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"jira-worklog/internal/worklog/repository"
	"jira-worklog/pkg/credential"
)

const (
	// AssignedJQL selects the current user's issues, newest update first.
	AssignedJQL = "assignee = currentUser() ORDER BY updated DESC"

	defaultMaxResults = 100
	defaultTimeout    = 30 * time.Second
)

// ClientOptions tunes the tracker HTTP client.
type ClientOptions struct {
	Timeout           time.Duration // per request; 0 means 30s
	RequestsPerSecond float64       // outbound pacing; 0 means unlimited
	MaxResults        int           // search page size; 0 means 100
}

// Client is the HTTP wrapper for the Jira REST API v2.
type Client struct {
	baseURL    string
	maxResults int
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a tracker client. Every request carries the bearer
// token from creds.
func NewClient(baseURL string, creds credential.Provider, opts ClientOptions) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		maxResults: maxResults,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: &oauth2.Transport{Source: creds},
		},
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Search runs a JQL search via GET /rest/api/2/search.
func (c *Client) Search(ctx context.Context, jql string, maxResults int) (*SearchResponse, error) {
	if maxResults <= 0 {
		maxResults = c.maxResults
	}
	q := url.Values{}
	q.Set("jql", jql)
	q.Set("maxResults", strconv.Itoa(maxResults))
	endpoint := fmt.Sprintf("%s/rest/api/2/search?%s", c.baseURL, q.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}

	resp, err := c.do(ctx, httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call jira search API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, &repository.UpstreamError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var out SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode jira search response: %w", err)
	}
	return &out, nil
}

// AddWorklog creates a work log via POST /rest/api/2/issue/{key}/worklog.
// Only 201 Created counts as success.
func (c *Client) AddWorklog(ctx context.Context, issueKey string, req WorklogRequest) error {
	endpoint := fmt.Sprintf("%s/rest/api/2/issue/%s/worklog", c.baseURL, url.PathEscape(issueKey))

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal worklog request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build worklog request: %w", err)
	}

	resp, err := c.do(ctx, httpReq)
	if err != nil {
		return fmt.Errorf("failed to call jira worklog API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		return &repository.UpstreamError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	return c.httpClient.Do(req)
}
