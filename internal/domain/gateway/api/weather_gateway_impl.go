package api

import (
	"context"
	"fmt"

	"golf-api/internal/domain/model/external"
	"golf-api/pkg/http"
)

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	httpClient *http.Client
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client.
// The service rejects requests without a User-Agent identifying the caller.
func NewWeatherGateway(baseUrl string, userAgent string, clientOptions http.ClientOptions) WeatherGateway {
	headers := map[string]string{
		"Accept": "application/geo+json",
	}
	for key, value := range clientOptions.DefaultHeaders {
		headers[key] = value
	}
	if userAgent != "" {
		headers["User-Agent"] = userAgent
	}
	clientOptions.DefaultHeaders = headers

	return &weatherGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

// GetPoint gets the metadata of a coordinate
func (w *weatherGatewayImpl) GetPoint(ctx context.Context, latitude float64, longitude float64) (*external.PointResponse, error) {
	path := fmt.Sprintf("/points/%.4f,%.4f", latitude, longitude)
	return get[external.PointResponse](ctx, w.httpClient, path)
}

// GetForecast gets the forecast periods linked from a point
func (w *weatherGatewayImpl) GetForecast(ctx context.Context, forecastURL string) (*external.ForecastResponse, error) {
	return get[external.ForecastResponse](ctx, w.httpClient, forecastURL)
}

// GetGridData gets the raw gridpoint layers linked from a point
func (w *weatherGatewayImpl) GetGridData(ctx context.Context, gridDataURL string) (*external.GridDataResponse, error) {
	return get[external.GridDataResponse](ctx, w.httpClient, gridDataURL)
}

func get[T any](ctx context.Context, client *http.Client, path string) (*T, error) {
	successResp, errResp, status, err := client.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(path).
		WithSuccessResp(new(T)).
		WithErrorResp(&external.ProblemResponse{}).
		Execute()

	if err == nil {
		return successResp.(*T), nil
	}

	if problem, ok := errResp.(*external.ProblemResponse); ok && problem.Detail != "" {
		return nil, fmt.Errorf("weather service returned %d: %s: %w", status, problem.Detail, err)
	}

	return nil, fmt.Errorf("weather service request %s failed: %w", path, err)
}
