package weather

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"golf-api/internal/domain/distance"
	"golf-api/internal/domain/entity"
	"golf-api/internal/domain/gateway/api"
	"golf-api/internal/domain/gateway/cache"
	"golf-api/internal/domain/gateway/queue"
	"golf-api/internal/domain/model"
	"golf-api/internal/domain/model/external"
	"golf-api/pkg/log"
	"golf-api/pkg/metrics"
	"golf-api/pkg/msg"
	"golf-api/pkg/util/numberutils"
)

var errNoForecastPeriods = errors.New("forecast has no periods")

// Config holds the refresh queue and the points it keeps warm
type Config struct {
	QueueName     string
	RefreshPoints []model.Location
}

type weatherUseCase struct {
	config      Config
	apiGateway  api.WeatherGateway
	cache       cache.ConditionsCache
	queueSender queue.Sender
	metrics     *metrics.Metrics
	clock       clockwork.Clock
}

func NewWeatherUseCase(config Config, apiGateway api.WeatherGateway, conditionsCache cache.ConditionsCache, queueSender queue.Sender, m *metrics.Metrics, clock clockwork.Clock) UseCase {
	return &weatherUseCase{
		config:      config,
		apiGateway:  apiGateway,
		cache:       conditionsCache,
		queueSender: queueSender,
		metrics:     m,
		clock:       clock,
	}
}

func (uc *weatherUseCase) GetConditions(ctx context.Context, location model.Location) (*entity.WeatherConditions, model.ConditionsSource, error) {
	if err := ValidateLocation(location); err != nil {
		return nil, "", err
	}

	cached, found, err := uc.cache.Get(ctx, location)
	if err != nil {
		log.Warn(msg.GetMessage("weather.cache.read-failed", cache.LocationKey(location), err))
	}
	if found {
		uc.metrics.ObserveConditionsLookup(string(model.SourceCache))
		return cached, model.SourceCache, nil
	}

	conditions, err := uc.RefreshConditions(ctx, location)
	if err != nil {
		return nil, "", err
	}
	return conditions, model.SourceAPI, nil
}

func (uc *weatherUseCase) RefreshConditions(ctx context.Context, location model.Location) (*entity.WeatherConditions, error) {
	if err := ValidateLocation(location); err != nil {
		return nil, err
	}

	conditions, err := uc.fetchConditions(ctx, location)
	if err != nil {
		uc.metrics.ObserveWeatherAPIFailure()
		return nil, err
	}
	uc.metrics.ObserveConditionsLookup(string(model.SourceAPI))

	if err := uc.cache.Set(ctx, location, *conditions); err != nil {
		log.Warn(msg.GetMessage("weather.cache.write-failed", cache.LocationKey(location), err))
	}
	return conditions, nil
}

// fetchConditions resolves the point, then reads the forecast and the grid data in parallel
func (uc *weatherUseCase) fetchConditions(ctx context.Context, location model.Location) (*entity.WeatherConditions, error) {
	point, err := uc.apiGateway.GetPoint(ctx, location.Latitude, location.Longitude)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve point %s: %w", cache.LocationKey(location), err)
	}

	var wg sync.WaitGroup
	var forecast *external.ForecastResponse
	var gridData *external.GridDataResponse
	var forecastErr, gridErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		forecast, forecastErr = uc.apiGateway.GetForecast(ctx, point.Properties.Forecast)
	}()
	go func() {
		defer wg.Done()
		gridData, gridErr = uc.apiGateway.GetGridData(ctx, point.Properties.ForecastGridData)
	}()
	wg.Wait()

	if forecastErr != nil {
		return nil, fmt.Errorf("failed to read forecast: %w", forecastErr)
	}
	if len(forecast.Properties.Periods) == 0 {
		return nil, errNoForecastPeriods
	}
	period := forecast.Properties.Periods[0]

	conditions := &entity.WeatherConditions{
		Latitude:      location.Latitude,
		Longitude:     location.Longitude,
		Temperature:   fahrenheit(period.Temperature, period.TemperatureUnit),
		WindSpeed:     period.WindSpeed,
		WindDirection: period.WindDirection,
		Forecast:      period.ShortForecast,
		FetchedAt:     uc.clock.Now().UTC(),
	}

	// Humidity is optional, a caller can still send it explicitly
	if gridErr != nil {
		log.Warn(msg.GetMessage("weather.humidity.unavailable", cache.LocationKey(location), gridErr))
	} else {
		conditions.Humidity = firstHumidity(gridData)
	}

	return conditions, nil
}

func (uc *weatherUseCase) EnqueueRefresh(ctx context.Context, requestID string) error {
	if uc.config.QueueName == "" || len(uc.config.RefreshPoints) == 0 {
		log.Debug("weather refresh has no queue or points configured", zap.String("request_id", requestID))
		return nil
	}

	messages := make([]queue.BatchMessage, len(uc.config.RefreshPoints))
	for i, point := range uc.config.RefreshPoints {
		messages[i] = queue.BatchMessage{
			MessageID: fmt.Sprintf("%s-%d", requestID, i),
			Body:      point,
		}
	}

	result, err := uc.queueSender.SendMessageBatch(ctx, uc.config.QueueName, messages)
	if err != nil {
		return fmt.Errorf("failed to enqueue weather refresh: %w", err)
	}

	log.Info(msg.GetMessage("weather.refresh.enqueued", len(result.Successful), uc.config.QueueName),
		zap.String("request_id", requestID))

	if len(result.Failed) > 0 {
		return fmt.Errorf("failed to enqueue %d of %d refresh points: %s",
			len(result.Failed), len(messages), strings.Join(result.Failed, ", "))
	}
	return nil
}

// ValidateLocation rejects coordinates outside the valid latitude and longitude ranges
func ValidateLocation(location model.Location) error {
	if !numberutils.IsFloat64InRange(location.Latitude, -90, 90) {
		return &distance.ValidationError{Field: "latitude", Value: numberutils.FormatFloat64(location.Latitude)}
	}
	if !numberutils.IsFloat64InRange(location.Longitude, -180, 180) {
		return &distance.ValidationError{Field: "longitude", Value: numberutils.FormatFloat64(location.Longitude)}
	}
	return nil
}

func fahrenheit(temperature *float64, unit string) string {
	if temperature == nil {
		return ""
	}
	value := *temperature
	if strings.EqualFold(unit, "C") {
		value = math.Round((value*9/5+32)*10) / 10
	}
	return numberutils.FormatFloat64(value)
}

// firstHumidity returns the relative humidity of the earliest grid interval
func firstHumidity(gridData *external.GridDataResponse) string {
	for _, value := range gridData.Properties.RelativeHumidity.Values {
		if value.Value != nil {
			return numberutils.FormatFloat64(*value.Value)
		}
	}
	return ""
}
