package distance

import (
	"errors"
	"math"
)

const (
	baselineTemperature = 70.0
	temperatureFactor   = 0.2
	baselineHumidity    = 50.0
	humidityFactor      = 0.02
)

var errAdjustedOutOfRange = errors.New("adjusted distance is out of range, check the weather values")

// TemperatureAdjustment returns the yards gained or lost against a 70°F day
func TemperatureAdjustment(temperature float64) float64 {
	return (temperature - baselineTemperature) * temperatureFactor
}

// HumidityAdjustment returns the yards gained or lost against 50% relative humidity
func HumidityAdjustment(humidity float64) float64 {
	return (humidity - baselineHumidity) * humidityFactor
}

// AdjustedDistance applies temperature, humidity and wind to a base distance.
// The result is not clamped and may be negative.
func AdjustedDistance(baseDistance, temperature, windSpeed float64, windDirection, facingDirection string, humidity float64) (float64, error) {
	wind, err := WindAdjustment(windSpeed, windDirection, facingDirection)
	if err != nil {
		return 0, err
	}

	adjusted := baseDistance + TemperatureAdjustment(temperature) + HumidityAdjustment(humidity) + wind
	if !IsFinite(adjusted) {
		return 0, &ValidationError{Field: "adjustedDistance", Err: errAdjustedOutOfRange}
	}
	return adjusted, nil
}

// AdjustedDistancesAllDirections runs AdjustedDistance once per compass point used as the
// facing direction, keyed by direction code and rounded to two decimals.
func AdjustedDistancesAllDirections(baseDistance, temperature, windSpeed float64, windDirection string, humidity float64) (map[string]float64, error) {
	if _, err := ParseDirection("windDirection", windDirection); err != nil {
		return nil, err
	}

	results := make(map[string]float64, len(rose))
	for _, facing := range rose {
		adjusted, err := AdjustedDistance(baseDistance, temperature, windSpeed, windDirection, string(facing), humidity)
		if err != nil {
			return nil, err
		}
		results[string(facing)] = Round2(adjusted)
	}

	return results, nil
}

// Round2 rounds to two decimals, half to even. Values too large to scale are
// returned unchanged.
func Round2(value float64) float64 {
	scaled := value * 100
	if !IsFinite(scaled) {
		return value
	}
	return math.RoundToEven(scaled) / 100
}

// IsFinite reports whether value is neither NaN nor an infinity
func IsFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
