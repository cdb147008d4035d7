package calculation

import (
	"context"

	"golf-api/internal/domain/distance"
	"golf-api/internal/domain/model"
)

type UseCase interface {
	// Calculate adjusts every club in the user's bag for the requested weather
	Calculate(ctx context.Context, userID string, dto model.CalculationRequestDTO) (*model.CalculationResponseDTO, error)

	// Preview adjusts a single ad hoc distance without reading the bag
	Preview(ctx context.Context, dto model.PreviewRequestDTO) (*distance.ClubResult, error)
}
