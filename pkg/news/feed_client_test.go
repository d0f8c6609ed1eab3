package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rssOne = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
	<title>Feed One</title>
	<link>http://example.com</link>
	<item>
		<title>Older story</title>
		<link>http://example.com/older</link>
		<description><![CDATA[<p>Some <b>markup</b> here</p>]]></description>
		<pubDate>Mon, 01 Jan 2024 08:00:00 +0000</pubDate>
	</item>
	<item>
		<title>Newest story</title>
		<link>http://example.com/newest</link>
		<description>Plain description</description>
		<pubDate>Mon, 01 Jan 2024 12:00:00 +0000</pubDate>
	</item>
</channel>
</rss>`

const rssTwo = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
	<title>Feed Two</title>
	<link>http://other.com</link>
	<item>
		<title>Middle story</title>
		<link>http://other.com/middle</link>
		<pubDate>Mon, 01 Jan 2024 10:00:00 +0000</pubDate>
	</item>
</channel>
</rss>`

func rssServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(content))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFeedClient_TopHeadlines(t *testing.T) {
	s1 := rssServer(t, rssOne)
	s2 := rssServer(t, rssTwo)

	client := NewFeedClient([]Feed{
		{Name: "One", URL: s1.URL},
		{Name: "Two", URL: s2.URL},
	}, "Delta/1.0", 5*time.Second)

	headlines, err := client.TopHeadlines(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, headlines, 3)

	// merged and sorted newest first
	assert.Equal(t, "Newest story", headlines[0].Title)
	assert.Equal(t, "One", headlines[0].Source)
	assert.Equal(t, "Middle story", headlines[1].Title)
	assert.Equal(t, "Two", headlines[1].Source)
	assert.Equal(t, "Older story", headlines[2].Title)
	assert.Equal(t, "Some markup here", headlines[2].Description)
}

func TestFeedClient_TopHeadlinesLimit(t *testing.T) {
	s := rssServer(t, rssOne)

	client := NewFeedClient([]Feed{{Name: "One", URL: s.URL}}, "Delta/1.0", 5*time.Second)
	headlines, err := client.TopHeadlines(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, headlines, 1)
	assert.Equal(t, "Newest story", headlines[0].Title)
}

func TestFeedClient_TopHeadlinesPartialFailure(t *testing.T) {
	good := rssServer(t, rssTwo)
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer bad.Close()

	client := NewFeedClient([]Feed{
		{Name: "Bad", URL: bad.URL},
		{Name: "Good", URL: good.URL},
	}, "Delta/1.0", 5*time.Second)

	headlines, err := client.TopHeadlines(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, headlines, 1)
	assert.Equal(t, "Middle story", headlines[0].Title)
}

func TestFeedClient_TopHeadlinesAllFail(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer bad.Close()

	client := NewFeedClient([]Feed{{Name: "Bad", URL: bad.URL}}, "Delta/1.0", 5*time.Second)
	_, err := client.TopHeadlines(context.Background(), 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all 1 feeds failed")
}

func TestFeedClient_SourceFallsBackToFeedTitle(t *testing.T) {
	s := rssServer(t, rssTwo)

	client := NewFeedClient([]Feed{{URL: s.URL}}, "Delta/1.0", 5*time.Second)
	headlines, err := client.TopHeadlines(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, headlines, 1)
	assert.Equal(t, "Feed Two", headlines[0].Source)
}
