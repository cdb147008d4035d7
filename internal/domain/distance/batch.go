package distance

import (
	"strconv"
	"strings"
)

// Conditions holds the weather fields as they arrive from a request
type Conditions struct {
	Temperature     string
	WindSpeed       string
	WindDirection   string
	FacingDirection string
	Humidity        string
}

// Snapshot is a parsed and validated Conditions
type Snapshot struct {
	Temperature     float64
	Humidity        float64
	WindSpeed       float64
	WindDirection   Direction
	FacingDirection Direction
}

// HasFacing reports whether the snapshot targets a single facing direction
func (s Snapshot) HasFacing() bool {
	return s.FacingDirection != ""
}

// Parse validates every field and fails on the first missing or malformed one.
// FacingDirection is optional.
func (c Conditions) Parse() (Snapshot, error) {
	var snapshot Snapshot
	var err error

	if snapshot.Temperature, err = parseNumber("temperature", c.Temperature); err != nil {
		return Snapshot{}, err
	}

	if strings.TrimSpace(c.WindSpeed) == "" {
		return Snapshot{}, &ValidationError{Field: "windSpeed"}
	}
	if snapshot.WindSpeed, err = ParseWindSpeed(c.WindSpeed); err != nil {
		return Snapshot{}, &ValidationError{Field: "windSpeed", Value: c.WindSpeed, Err: err}
	}

	if strings.TrimSpace(c.WindDirection) == "" {
		return Snapshot{}, &ValidationError{Field: "windDirection"}
	}
	if snapshot.WindDirection, err = ParseDirection("windDirection", c.WindDirection); err != nil {
		return Snapshot{}, err
	}

	if strings.TrimSpace(c.FacingDirection) != "" {
		if snapshot.FacingDirection, err = ParseDirection("facingDirection", c.FacingDirection); err != nil {
			return Snapshot{}, err
		}
	}

	if snapshot.Humidity, err = parseNumber("humidity", c.Humidity); err != nil {
		return Snapshot{}, err
	}

	return snapshot, nil
}

func parseNumber(field, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &ValidationError{Field: field}
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || !IsFinite(value) {
		return 0, &ValidationError{Field: field, Value: raw}
	}
	return value, nil
}

// ClubDistance is a club's name and stored carry
type ClubDistance struct {
	Name         string
	BaseDistance float64
}

// ClubResult is the outcome for one club. Exactly one of AdjustedDistance and
// AdjustedDistances is set.
type ClubResult struct {
	ClubName          string             `json:"club_name"`
	OriginalDistance  float64            `json:"original_distance"`
	AdjustedDistance  *float64           `json:"adjusted_distance,omitempty"`
	AdjustedDistances map[string]float64 `json:"adjusted_distances,omitempty"`
}

// BatchCalculate adjusts every club with the same weather. Clubs are checked first, then
// the weather, and nothing is computed unless both are valid. Results keep the club order.
func BatchCalculate(clubs []ClubDistance, conditions Conditions) ([]ClubResult, error) {
	if len(clubs) == 0 {
		return nil, &NotFoundError{Resource: "golf clubs"}
	}

	snapshot, err := conditions.Parse()
	if err != nil {
		return nil, err
	}

	return Calculate(clubs, snapshot)
}

// Calculate is BatchCalculate for an already parsed snapshot
func Calculate(clubs []ClubDistance, snapshot Snapshot) ([]ClubResult, error) {
	results := make([]ClubResult, 0, len(clubs))
	for _, club := range clubs {
		result := ClubResult{ClubName: club.Name, OriginalDistance: club.BaseDistance}

		if snapshot.HasFacing() {
			adjusted, err := AdjustedDistance(club.BaseDistance, snapshot.Temperature, snapshot.WindSpeed,
				string(snapshot.WindDirection), string(snapshot.FacingDirection), snapshot.Humidity)
			if err != nil {
				return nil, err
			}
			result.AdjustedDistance = &adjusted
		} else {
			adjusted, err := AdjustedDistancesAllDirections(club.BaseDistance, snapshot.Temperature, snapshot.WindSpeed,
				string(snapshot.WindDirection), snapshot.Humidity)
			if err != nil {
				return nil, err
			}
			result.AdjustedDistances = adjusted
		}

		results = append(results, result)
	}

	return results, nil
}
