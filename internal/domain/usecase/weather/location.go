package weather

import (
	"fmt"
	"strings"

	"golf-api/internal/domain/model"
	"golf-api/pkg/util/numberutils"
)

// ParseLocation reads a "latitude,longitude" pair such as "40.7128,-74.006"
func ParseLocation(text string) (model.Location, error) {
	latText, lonText, found := strings.Cut(text, ",")
	if !found {
		return model.Location{}, fmt.Errorf("invalid location %q, use latitude,longitude", text)
	}

	latitude, err := numberutils.ToFloat64WithError(latText)
	if err != nil {
		return model.Location{}, fmt.Errorf("invalid latitude in %q: %w", text, err)
	}
	longitude, err := numberutils.ToFloat64WithError(lonText)
	if err != nil {
		return model.Location{}, fmt.Errorf("invalid longitude in %q: %w", text, err)
	}

	location := model.Location{Latitude: latitude, Longitude: longitude}
	if err := ValidateLocation(location); err != nil {
		return model.Location{}, err
	}
	return location, nil
}

// ParseLocations parses every configured refresh point
func ParseLocations(points []string) ([]model.Location, error) {
	locations := make([]model.Location, 0, len(points))
	for _, point := range points {
		if strings.TrimSpace(point) == "" {
			continue
		}
		location, err := ParseLocation(point)
		if err != nil {
			return nil, err
		}
		locations = append(locations, location)
	}
	return locations, nil
}
