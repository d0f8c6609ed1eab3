// Package wiki fetches page summaries from a MediaWiki REST endpoint and
// trims them to a sentence budget.
package wiki

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/umputun/delta/pkg/domain"
)

// ErrNotFound means the topic has no page
var ErrNotFound = errors.New("page not found")

// Client talks to the encyclopedia REST API
type Client struct {
	endpoint  string
	sentences int
	client    *http.Client
}

// New creates a wiki client, summaries are cut to the given sentence count
func New(endpoint string, sentences int, timeout time.Duration) *Client {
	return &Client{
		endpoint:  endpoint,
		sentences: sentences,
		client:    &http.Client{Timeout: timeout},
	}
}

// Summary returns a trimmed summary for the topic
func (c *Client) Summary(ctx context.Context, topic string) (*domain.WikiSummary, error) {
	reqURL := fmt.Sprintf("%s/page/summary/%s", c.endpoint, url.PathEscape(topic))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create summary request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch summary for %q: %w", topic, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("summary service returned status %d", resp.StatusCode)
	}

	var body struct {
		Title       string `json:"title"`
		Extract     string `json:"extract"`
		ContentURLs struct {
			Desktop struct {
				Page string `json:"page"`
			} `json:"desktop"`
		} `json:"content_urls"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode summary response: %w", err)
	}
	if body.Extract == "" {
		return nil, ErrNotFound
	}

	return &domain.WikiSummary{
		Title:   body.Title,
		Extract: firstSentences(body.Extract, c.sentences),
		URL:     body.ContentURLs.Desktop.Page,
	}, nil
}

// firstSentences cuts text after n sentence terminators. A terminator is
// '.', '!' or '?' followed by a space or the end of the text.
func firstSentences(text string, n int) string {
	if n < 1 {
		return text
	}
	count := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '.', '!', '?':
			if i+1 == len(text) || text[i+1] == ' ' {
				count++
				if count == n {
					return strings.TrimSpace(text[:i+1])
				}
			}
		}
	}
	return text
}
