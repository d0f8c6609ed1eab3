package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/umputun/delta/pkg/domain"
)

// APIClient fetches top headlines from a NewsAPI-compatible endpoint
type APIClient struct {
	endpoint string
	apiKey   string
	country  string
	client   *http.Client
}

// NewAPIClient creates a headline client for the given endpoint and country
func NewAPIClient(endpoint, apiKey, country string, timeout time.Duration) *APIClient {
	return &APIClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		country:  country,
		client:   &http.Client{Timeout: timeout},
	}
}

// TopHeadlines returns up to limit headlines for the configured country
func (c *APIClient) TopHeadlines(ctx context.Context, limit int) ([]domain.Headline, error) {
	q := url.Values{}
	q.Set("country", c.country)
	q.Set("pageSize", fmt.Sprintf("%d", limit))
	reqURL := fmt.Sprintf("%s/top-headlines?%s", c.endpoint, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create headlines request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch headlines: %w", err)
	}
	defer resp.Body.Close()

	var body struct {
		Status   string `json:"status"`
		Code     string `json:"code"`
		Message  string `json:"message"`
		Articles []struct {
			Source struct {
				Name string `json:"name"`
			} `json:"source"`
			Title       string    `json:"title"`
			Description string    `json:"description"`
			URL         string    `json:"url"`
			PublishedAt time.Time `json:"publishedAt"`
		} `json:"articles"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode headlines response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || body.Status != "ok" {
		if body.Message != "" {
			return nil, fmt.Errorf("news service error %s: %s", body.Code, body.Message)
		}
		return nil, fmt.Errorf("news service returned status %d", resp.StatusCode)
	}

	headlines := make([]domain.Headline, 0, len(body.Articles))
	for _, a := range body.Articles {
		if a.Title == "" {
			continue
		}
		headlines = append(headlines, domain.Headline{
			Title:       cleanText(a.Title),
			Source:      a.Source.Name,
			Link:        a.URL,
			Description: cleanText(a.Description),
			Published:   a.PublishedAt,
		})
		if len(headlines) == limit {
			break
		}
	}
	return headlines, nil
}
