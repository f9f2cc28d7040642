package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.github.com"

// Client lists the configured user's public repositories. A token is
// optional; it only raises the upstream rate limit.
type Client struct {
	baseURL    string
	username   string
	token      string
	httpClient *http.Client
}

func NewClient(username, token string) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		username:   username,
		token:      token,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// ListRepos fetches up to 100 repositories, most recently updated first. The
// payload is passed through untouched for the admin UI to render.
func (c *Client) ListRepos(ctx context.Context) ([]json.RawMessage, error) {
	url := fmt.Sprintf("%s/users/%s/repos?sort=updated&per_page=100", c.baseURL, c.username)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("github request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "portfolio-admin-panel")
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github list repos: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("github list repos returned %d: %s", resp.StatusCode, string(body))
	}

	var repos []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, fmt.Errorf("github list repos: decode: %w", err)
	}
	return repos, nil
}
