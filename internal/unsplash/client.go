// Package unsplash searches photos via the Unsplash API.
package unsplash

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/kingsalmon6969-svg/hermax-bot/internal/logging"
)

// ErrNoKey is returned when no API key is configured.
var ErrNoKey = fmt.Errorf("unsplash access key not configured")

// Client calls the Unsplash photo search API.
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient creates an Unsplash client.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.timeout()},
	}
}

// Search returns direct URLs for the top photos matching the query.
// An empty slice means no results; a missing key returns ErrNoKey.
func (c *Client) Search(ctx context.Context, query string, count int) ([]string, error) {
	if c.cfg.AccessKey == "" {
		return nil, ErrNoKey
	}
	if count <= 0 {
		count = 3
	}

	reqURL, _ := url.Parse(c.cfg.searchURL())
	q := reqURL.Query()
	q.Set("query", query)
	q.Set("per_page", fmt.Sprintf("%d", count))
	q.Set("client_id", c.cfg.AccessKey)
	reqURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		logging.L_error("unsplash: request failed", "query", query, "error", err)
		return nil, fmt.Errorf("unsplash request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		logging.L_error("unsplash: API error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("unsplash API error: %s", resp.Status)
	}

	var payload struct {
		Errors  []string `json:"errors"`
		Results []struct {
			URLs struct {
				Regular string `json:"regular"`
			} `json:"urls"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(payload.Errors) > 0 {
		return nil, fmt.Errorf("unsplash API error: %s", payload.Errors[0])
	}

	urls := make([]string, 0, len(payload.Results))
	for _, r := range payload.Results {
		if r.URLs.Regular != "" {
			urls = append(urls, r.URLs.Regular)
		}
	}

	logging.L_debug("unsplash: search done", "query", query, "results", len(urls))
	return urls, nil
}
