package news

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/mmcdole/gofeed"

	"github.com/umputun/delta/pkg/domain"
)

// Feed is one RSS/Atom source for the feed client
type Feed struct {
	Name string
	URL  string
}

// FeedClient builds the headline digest from RSS/Atom feeds
type FeedClient struct {
	feeds     []Feed
	userAgent string
	client    *http.Client
}

// NewFeedClient creates a headline client over the given feeds
func NewFeedClient(feeds []Feed, userAgent string, timeout time.Duration) *FeedClient {
	return &FeedClient{
		feeds:     feeds,
		userAgent: userAgent,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// TopHeadlines fetches every feed, merges the items newest first and returns
// up to limit of them. Individual feed failures are logged and skipped, the
// call fails only when no feed delivered anything.
func (c *FeedClient) TopHeadlines(ctx context.Context, limit int) ([]domain.Headline, error) {
	var all []domain.Headline
	failed := 0

	for _, f := range c.feeds {
		items, err := c.parseFeed(ctx, f)
		if err != nil {
			lgr.Printf("[WARN] failed to fetch feed %s: %v", f.URL, err)
			failed++
			continue
		}
		all = append(all, items...)
	}

	if len(all) == 0 {
		if failed > 0 {
			return nil, fmt.Errorf("all %d feeds failed", failed)
		}
		return nil, fmt.Errorf("no headlines available")
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].Published.After(all[j].Published) })
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// parseFeed fetches and parses a single feed
func (c *FeedClient) parseFeed(ctx context.Context, f Feed) ([]domain.Headline, error) {
	body, err := c.fetch(ctx, f.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	parser := gofeed.NewParser()
	feed, err := parser.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	source := f.Name
	if source == "" {
		source = feed.Title
	}

	items := make([]domain.Headline, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.Title == "" {
			continue
		}

		h := domain.Headline{
			Title:       cleanText(item.Title),
			Source:      source,
			Link:        item.Link,
			Description: cleanText(item.Description),
		}
		if item.PublishedParsed != nil {
			h.Published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			h.Published = *item.UpdatedParsed
		}

		items = append(items, h)
	}
	return items, nil
}

// fetch retrieves content from a URL
func (c *FeedClient) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}
