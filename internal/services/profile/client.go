package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"NewsRank/internal/domain/models"
	drepo "NewsRank/internal/domain/repository"
	xhttp "NewsRank/pkg/http"
)

// Client fetches user profiles from the external profile service.
type Client struct {
	baseURL string
	client  *xhttp.Client
}

// NewClient builds a profile service client with the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

// Profile fetches the profile for userID. A 404 from the service maps to
// ErrProfileNotFound so the caller can fall back to an empty profile.
func (c *Client) Profile(ctx context.Context, userID string) (*models.UserProfile, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("profile client not initialized")
	}

	resp, err := c.client.SendRequest(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    fmt.Sprintf("%s/users/%s/profile", c.baseURL, userID),
	})
	if err != nil {
		return nil, fmt.Errorf("fetch profile %s: %w", userID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, drepo.ErrProfileNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("profile service status %d: %s", resp.StatusCode, body)
	}

	var p models.UserProfile
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode profile %s: %w", userID, err)
	}
	return &p, nil
}

// Close satisfies the ProfileStore interface; the client holds no
// long-lived resources.
func (c *Client) Close() error { return nil }
