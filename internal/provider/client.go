// Package provider is a minimal client for a series data provider API.
// It expects the provider to expose series timeline documents in the same
// JSON shape the loader package decodes.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client talks to a series data provider over HTTP with bearer auth.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient returns a provider client for the given endpoint and API key.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SeriesListItem is one entry from the team series listing.
type SeriesListItem struct {
	SeriesID   string `json:"series_id"`
	Date       string `json:"date"`
	Tournament string `json:"tournament"`
	Opponent   string `json:"opponent"`
	Status     string `json:"status"`
}

// get performs an authenticated GET against the provider and returns the
// raw response body.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: HTTP %d", path, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// GetSeriesDocument fetches the full timeline document for a series. The
// caller decodes it with the loader package.
func (c *Client) GetSeriesDocument(ctx context.Context, seriesID string) ([]byte, error) {
	return c.get(ctx, "/series/"+url.PathEscape(seriesID)+"/timeline")
}

// ListTeamSeries returns up to limit recent completed series for a team.
func (c *Client) ListTeamSeries(ctx context.Context, teamID string, limit int) ([]SeriesListItem, error) {
	path := fmt.Sprintf("/teams/%s/series?status=completed&limit=%d", url.PathEscape(teamID), limit)
	b, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Items []SeriesListItem `json:"items"`
	}
	if err := json.Unmarshal(b, &resp); err != nil {
		return nil, fmt.Errorf("decode series list: %w", err)
	}
	return resp.Items, nil
}
