// Package jokes fetches a random joke from an icanhazdadjoke-compatible
// endpoint.
package jokes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to the joke API
type Client struct {
	endpoint string
	client   *http.Client
}

// New creates a joke client
func New(endpoint string, timeout time.Duration) *Client {
	return &Client{endpoint: endpoint, client: &http.Client{Timeout: timeout}}
}

// Random returns one random joke
func (c *Client) Random(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/", http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create joke request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "Delta (https://github.com/umputun/delta)")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch joke: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("joke service returned status %d", resp.StatusCode)
	}

	var body struct {
		Joke string `json:"joke"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode joke response: %w", err)
	}
	if body.Joke == "" {
		return "", fmt.Errorf("joke service returned an empty joke")
	}
	return body.Joke, nil
}
