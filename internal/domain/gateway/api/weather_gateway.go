package api

import (
	"context"

	"golf-api/internal/domain/model/external"
)

// WeatherGateway defines the National Weather Service calls used to read current conditions
type WeatherGateway interface {
	// GetPoint resolves a coordinate to its forecast office links
	GetPoint(ctx context.Context, latitude float64, longitude float64) (*external.PointResponse, error)

	// GetForecast follows the forecast link of a point
	GetForecast(ctx context.Context, forecastURL string) (*external.ForecastResponse, error)

	// GetGridData follows the forecastGridData link of a point
	GetGridData(ctx context.Context, gridDataURL string) (*external.GridDataResponse, error)
}
