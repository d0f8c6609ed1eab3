// Package dict looks up word definitions from a dictionaryapi.dev compatible
// endpoint.
package dict

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrNotFound means the dictionary has no entry for the word
var ErrNotFound = errors.New("no definition found")

// Definition is the first definition of a word
type Definition struct {
	Word         string `json:"word"`
	PartOfSpeech string `json:"part_of_speech"`
	Meaning      string `json:"meaning"`
	Example      string `json:"example,omitempty"`
}

// Client talks to the dictionary API
type Client struct {
	endpoint string
	client   *http.Client
}

// New creates a dictionary client
func New(endpoint string, timeout time.Duration) *Client {
	return &Client{endpoint: endpoint, client: &http.Client{Timeout: timeout}}
}

// Define returns the first definition of the word
func (c *Client) Define(ctx context.Context, word string) (*Definition, error) {
	reqURL := fmt.Sprintf("%s/entries/en/%s", c.endpoint, url.PathEscape(word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create dictionary request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("look up %q: %w", word, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dictionary service returned status %d", resp.StatusCode)
	}

	var entries []struct {
		Word     string `json:"word"`
		Meanings []struct {
			PartOfSpeech string `json:"partOfSpeech"`
			Definitions  []struct {
				Definition string `json:"definition"`
				Example    string `json:"example"`
			} `json:"definitions"`
		} `json:"meanings"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode dictionary response: %w", err)
	}

	for _, e := range entries {
		for _, m := range e.Meanings {
			for _, d := range m.Definitions {
				if d.Definition == "" {
					continue
				}
				return &Definition{
					Word:         e.Word,
					PartOfSpeech: m.PartOfSpeech,
					Meaning:      d.Definition,
					Example:      d.Example,
				}, nil
			}
		}
	}
	return nil, ErrNotFound
}
