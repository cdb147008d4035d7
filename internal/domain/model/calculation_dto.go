package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"golf-api/internal/domain/distance"
)

// LooseString accepts a JSON string, number or null and keeps its text form.
// Forms post numbers as strings while API clients send them as numbers.
type LooseString string

func (s *LooseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
	case len(data) > 0 && data[0] == '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*s = LooseString(text)
	default:
		var number json.Number
		if err := json.Unmarshal(data, &number); err != nil {
			return fmt.Errorf("expected a string or a number, got %s", data)
		}
		*s = LooseString(number.String())
	}
	return nil
}

// WeatherInputDTO carries the raw weather fields of a calculation request
type WeatherInputDTO struct {
	Temperature     LooseString `json:"temperature" swaggertype:"string" example:"82"`
	WindSpeed       LooseString `json:"windSpeed" swaggertype:"string" example:"8 to 12 mph"`
	WindDirection   LooseString `json:"windDirection" swaggertype:"string" example:"WSW"`
	FacingDirection LooseString `json:"facingDirection,omitempty" swaggertype:"string" example:"N"`
	Humidity        LooseString `json:"humidity" swaggertype:"string" example:"64"`
}

// Conditions converts the request fields to the calculator input
func (dto WeatherInputDTO) Conditions() distance.Conditions {
	return distance.Conditions{
		Temperature:     string(dto.Temperature),
		WindSpeed:       string(dto.WindSpeed),
		WindDirection:   string(dto.WindDirection),
		FacingDirection: string(dto.FacingDirection),
		Humidity:        string(dto.Humidity),
	}
}

// CalculationRequestDTO is the body of POST /calculations. Latitude and Longitude
// are optional and fill missing weather fields from live conditions.
type CalculationRequestDTO struct {
	WeatherInputDTO
	Latitude  *float64 `json:"latitude,omitempty" example:"40.7128"`
	Longitude *float64 `json:"longitude,omitempty" example:"-74.006"`
}

// HasLocation reports whether both coordinates were sent
func (dto CalculationRequestDTO) HasLocation() bool {
	return dto.Latitude != nil && dto.Longitude != nil
}

// PreviewRequestDTO is the body of POST /calculations/preview
type PreviewRequestDTO struct {
	WeatherInputDTO
	Distance LooseString `json:"distance" swaggertype:"string" example:"150"`
}

type CalculationResponseDTO struct {
	GolfClubs []distance.ClubResult `json:"golf_clubs"`
}
