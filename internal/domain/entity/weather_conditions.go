package entity

import "time"

// WeatherConditions is the current weather at a point, kept in the raw form the
// calculation endpoint accepts
type WeatherConditions struct {
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	Temperature   string    `json:"temperature"`
	WindSpeed     string    `json:"windSpeed"`
	WindDirection string    `json:"windDirection"`
	Humidity      string    `json:"humidity"`
	Forecast      string    `json:"shortForecast,omitempty"`
	FetchedAt     time.Time `json:"fetchedAt"`
}
