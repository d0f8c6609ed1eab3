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

func TestAPIClient_TopHeadlines(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/top-headlines", r.URL.Path)
		assert.Equal(t, "us", r.URL.Query().Get("country"))
		assert.Equal(t, "5", r.URL.Query().Get("pageSize"))
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "ok",
			"totalResults": 3,
			"articles": [
				{"source": {"name": "BBC News"}, "title": "First headline", "description": "First description", "url": "https://example.com/1", "publishedAt": "2024-03-01T10:00:00Z"},
				{"source": {"name": "Reuters"}, "title": "Second <b>headline</b>", "description": "Second description", "url": "https://example.com/2", "publishedAt": "2024-03-01T09:00:00Z"},
				{"source": {"name": "AP"}, "title": "", "description": "skipped, no title", "url": "https://example.com/3", "publishedAt": "2024-03-01T08:00:00Z"}
			]
		}`))
	}))
	defer server.Close()

	client := NewAPIClient(server.URL, "test-key", "us", 5*time.Second)
	headlines, err := client.TopHeadlines(context.Background(), 5)
	require.NoError(t, err)

	require.Len(t, headlines, 2)
	assert.Equal(t, "First headline", headlines[0].Title)
	assert.Equal(t, "BBC News", headlines[0].Source)
	assert.Equal(t, "https://example.com/1", headlines[0].Link)
	assert.Equal(t, "Second headline", headlines[1].Title) // markup stripped
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), headlines[0].Published)
}

func TestAPIClient_TopHeadlinesLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status": "ok",
			"articles": [
				{"source": {"name": "A"}, "title": "one", "url": "https://example.com/1"},
				{"source": {"name": "B"}, "title": "two", "url": "https://example.com/2"},
				{"source": {"name": "C"}, "title": "three", "url": "https://example.com/3"}
			]
		}`))
	}))
	defer server.Close()

	client := NewAPIClient(server.URL, "test-key", "us", 5*time.Second)
	headlines, err := client.TopHeadlines(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, headlines, 2)
	assert.Equal(t, "one", headlines[0].Title)
	assert.Equal(t, "two", headlines[1].Title)
}

func TestAPIClient_TopHeadlinesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status": "error", "code": "apiKeyInvalid", "message": "Your API key is invalid"}`))
	}))
	defer server.Close()

	client := NewAPIClient(server.URL, "bad-key", "us", 5*time.Second)
	_, err := client.TopHeadlines(context.Background(), 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "apiKeyInvalid")
	assert.Contains(t, err.Error(), "Your API key is invalid")
}

func TestAPIClient_TopHeadlinesUnreachable(t *testing.T) {
	client := NewAPIClient("http://127.0.0.1:1", "test-key", "us", time.Second)
	_, err := client.TopHeadlines(context.Background(), 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch headlines")
}
