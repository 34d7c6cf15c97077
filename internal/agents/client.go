// Package agents wraps the external character catalog API.
package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"valorhub/internal/models"
)

// Client calls the upstream agent catalog over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a catalog client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// checkResp returns an error if the status is not 2xx, including the
// upstream body for server-side debugging.
func checkResp(resp *http.Response, path string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("catalog %s returned %d: %s", path, resp.StatusCode, string(body))
}

// PlayableAgents calls GET /agents restricted to playable characters. The
// upstream already honors the query parameter; the result is filtered again
// client-side so a misbehaving upstream can't slip NPCs into the payload.
func (c *Client) PlayableAgents(ctx context.Context) ([]models.Agent, error) {
	const path = "/agents"
	url := c.baseURL + path + "?isPlayableCharacter=true"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	defer resp.Body.Close()

	if err := checkResp(resp, path); err != nil {
		return nil, err
	}

	var result struct {
		Status int            `json:"status"`
		Data   []models.Agent `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("catalog %s: decode: %w", path, err)
	}

	playable := make([]models.Agent, 0, len(result.Data))
	for _, a := range result.Data {
		if a.IsPlayableCharacter {
			playable = append(playable, a)
		}
	}
	return playable, nil
}
