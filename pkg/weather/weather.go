// Package weather fetches current conditions from a WeatherAPI-compatible
// endpoint.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/umputun/delta/pkg/domain"
)

// Client talks to the weather service
type Client struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// APIError is a structured error the weather service returns, e.g. an
// unknown location. The message is safe to show to the user.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("weather api error %d: %s", e.Code, e.Message)
}

// New creates a weather client for the given endpoint and key
func New(endpoint, apiKey string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
	}
}

// Current returns current conditions for the city
func (c *Client) Current(ctx context.Context, city string) (*domain.WeatherReport, error) {
	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("q", city)
	reqURL := fmt.Sprintf("%s/current.json?%s", c.endpoint, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create weather request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch weather for %q: %w", city, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			Error APIError `json:"error"`
		}
		if decErr := json.NewDecoder(resp.Body).Decode(&errResp); decErr == nil && errResp.Error.Message != "" {
			return nil, &errResp.Error
		}
		return nil, fmt.Errorf("weather service returned status %d", resp.StatusCode)
	}

	var body struct {
		Location struct {
			Name string `json:"name"`
		} `json:"location"`
		Current struct {
			TempC     float64 `json:"temp_c"`
			Humidity  float64 `json:"humidity"`
			WindKPH   float64 `json:"wind_kph"`
			Condition struct {
				Text string `json:"text"`
			} `json:"condition"`
		} `json:"current"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode weather response: %w", err)
	}

	return &domain.WeatherReport{
		City:      body.Location.Name,
		Condition: body.Current.Condition.Text,
		TempC:     body.Current.TempC,
		Humidity:  body.Current.Humidity,
		WindKPH:   body.Current.WindKPH,
	}, nil
}
