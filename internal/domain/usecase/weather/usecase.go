package weather

import (
	"context"

	"golf-api/internal/domain/entity"
	"golf-api/internal/domain/model"
)

type UseCase interface {
	// GetConditions returns the current conditions at location, from the cache when fresh
	GetConditions(ctx context.Context, location model.Location) (*entity.WeatherConditions, model.ConditionsSource, error)

	// RefreshConditions reads the conditions from the weather service and overwrites the cache
	RefreshConditions(ctx context.Context, location model.Location) (*entity.WeatherConditions, error)

	// EnqueueRefresh sends every configured refresh point to the refresh queue
	EnqueueRefresh(ctx context.Context, requestID string) error
}
