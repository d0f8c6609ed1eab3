package domain

import "time"

// WeatherReport holds current conditions for a city
type WeatherReport struct {
	City      string  `json:"city"`
	Condition string  `json:"condition"`
	TempC     float64 `json:"temp_c"`
	Humidity  float64 `json:"humidity"`
	WindKPH   float64 `json:"wind_kph"`
}

// Headline is a single news item from either the news API or an RSS feed
type Headline struct {
	Title       string    `json:"title"`
	Source      string    `json:"source"`
	Link        string    `json:"link"`
	Description string    `json:"description,omitempty"`
	Published   time.Time `json:"published,omitempty"`
}

// WikiSummary is a trimmed encyclopedia summary for a topic
type WikiSummary struct {
	Title   string `json:"title"`
	Extract string `json:"extract"`
	URL     string `json:"url"`
}
