package distance

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// maxImpact is the carry gained (or lost) per mph of pure tail (or head) wind
const maxImpact = 1.5

var windSpeedRe = regexp.MustCompile(`^(\d+)(?:\s*to\s*(\d+))?\s*mph$`)

// ParseWindSpeed reads "12 mph" or "8 to 12 mph" and returns the mean of the bounds
func ParseWindSpeed(text string) (float64, error) {
	match := windSpeedRe.FindStringSubmatch(strings.ToLower(strings.TrimSpace(text)))
	if match == nil {
		return 0, &ParseError{Input: text}
	}

	lower, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, &ParseError{Input: text}
	}
	upper := lower
	if match[2] != "" {
		if upper, err = strconv.ParseFloat(match[2], 64); err != nil {
			return 0, &ParseError{Input: text}
		}
	}

	mean := lower/2 + upper/2
	if !IsFinite(mean) {
		return 0, &ParseError{Input: text}
	}
	return mean, nil
}

// ImpactFactor maps an angular separation to a multiplier in [-1.5, 1.5].
// Zero separation means the wind blows from behind the golfer toward the target.
func ImpactFactor(separation float64) float64 {
	// The two special cases equal the cosine taper at its end points.
	switch separation {
	case 180:
		return -maxImpact
	case 0:
		return maxImpact
	default:
		return math.Cos(separation*math.Pi/180) * maxImpact
	}
}

// WindAdjustment returns the signed yardage the wind adds to a shot
func WindAdjustment(windSpeed float64, windDirection string, facingDirection string) (float64, error) {
	wind, err := ParseDirection("windDirection", windDirection)
	if err != nil {
		return 0, err
	}
	facing, err := ParseDirection("facingDirection", facingDirection)
	if err != nil {
		return 0, err
	}

	return windSpeed * ImpactFactor(AngularSeparation(wind, facing)), nil
}
