package calculation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"golf-api/internal/domain/distance"
	"golf-api/internal/domain/model"
	"golf-api/internal/domain/usecase/club"
	"golf-api/internal/domain/usecase/weather"
	"golf-api/pkg/log"
	"golf-api/pkg/metrics"
	"golf-api/pkg/util/numberutils"
)

const (
	modeSingle = "single"
	modeSweep  = "sweep"

	previewClubName = "custom"
)

type calculationUseCase struct {
	clubUseCase    club.UseCase
	weatherUseCase weather.UseCase
	metrics        *metrics.Metrics
}

func NewCalculationUseCase(clubUseCase club.UseCase, weatherUseCase weather.UseCase, m *metrics.Metrics) UseCase {
	return &calculationUseCase{
		clubUseCase:    clubUseCase,
		weatherUseCase: weatherUseCase,
		metrics:        m,
	}
}

func (uc *calculationUseCase) Calculate(ctx context.Context, userID string, dto model.CalculationRequestDTO) (*model.CalculationResponseDTO, error) {
	clubs, err := uc.clubUseCase.ListClubDistances(ctx, userID)
	if err != nil {
		return nil, err
	}

	conditions := dto.Conditions()
	if len(clubs) > 0 && dto.HasLocation() && missingWeather(conditions) {
		location := model.Location{Latitude: *dto.Latitude, Longitude: *dto.Longitude}
		if conditions, err = uc.fillFromLiveConditions(ctx, location, conditions); err != nil {
			uc.observeError(err)
			return nil, err
		}
	}

	results, err := distance.BatchCalculate(clubs, conditions)
	if err != nil {
		uc.observeError(err)
		return nil, err
	}

	uc.metrics.ObserveBatch(mode(conditions), len(results))
	log.Debug("calculated adjusted distances", zap.String("user_id", userID), zap.Int("clubs", len(results)))

	return &model.CalculationResponseDTO{GolfClubs: results}, nil
}

func (uc *calculationUseCase) Preview(_ context.Context, dto model.PreviewRequestDTO) (*distance.ClubResult, error) {
	base, err := parseDistance(string(dto.Distance))
	if err != nil {
		uc.observeError(err)
		return nil, err
	}

	conditions := dto.Conditions()
	snapshot, err := conditions.Parse()
	if err != nil {
		uc.observeError(err)
		return nil, err
	}

	results, err := distance.Calculate([]distance.ClubDistance{{Name: previewClubName, BaseDistance: base}}, snapshot)
	if err != nil {
		uc.observeError(err)
		return nil, err
	}

	uc.metrics.ObserveBatch(mode(conditions), 1)
	return &results[0], nil
}

// fillFromLiveConditions keeps every field the caller sent and takes the rest from the weather service
func (uc *calculationUseCase) fillFromLiveConditions(ctx context.Context, location model.Location, conditions distance.Conditions) (distance.Conditions, error) {
	live, _, err := uc.weatherUseCase.GetConditions(ctx, location)
	if err != nil {
		var validation *distance.ValidationError
		if errors.As(err, &validation) {
			return conditions, err
		}
		return conditions, fmt.Errorf("failed to read live conditions: %w", err)
	}

	conditions.Temperature = firstNonBlank(conditions.Temperature, live.Temperature)
	conditions.WindSpeed = firstNonBlank(conditions.WindSpeed, live.WindSpeed)
	conditions.WindDirection = firstNonBlank(conditions.WindDirection, live.WindDirection)
	conditions.Humidity = firstNonBlank(conditions.Humidity, live.Humidity)
	return conditions, nil
}

func (uc *calculationUseCase) observeError(err error) {
	var notFound *distance.NotFoundError
	var parseErr *distance.ParseError
	var validation *distance.ValidationError
	switch {
	case errors.As(err, &notFound):
		uc.metrics.ObserveCalculationError("not_found")
	case errors.As(err, &parseErr):
		uc.metrics.ObserveCalculationError("parse")
	case errors.As(err, &validation):
		uc.metrics.ObserveCalculationError("validation")
	}
}

func parseDistance(raw string) (float64, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, &distance.ValidationError{Field: "distance"}
	}
	value, err := numberutils.ToFloat64WithError(raw)
	if err != nil || !distance.IsFinite(value) || value <= 0 {
		return 0, &distance.ValidationError{Field: "distance", Value: raw}
	}
	return value, nil
}

func missingWeather(conditions distance.Conditions) bool {
	for _, field := range []string{conditions.Temperature, conditions.WindSpeed, conditions.WindDirection, conditions.Humidity} {
		if strings.TrimSpace(field) == "" {
			return true
		}
	}
	return false
}

func firstNonBlank(value string, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func mode(conditions distance.Conditions) string {
	if strings.TrimSpace(conditions.FacingDirection) != "" {
		return modeSingle
	}
	return modeSweep
}
