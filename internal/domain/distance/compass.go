package distance

import (
	"slices"
	"strings"
)

// Direction is one of the sixteen compass points
type Direction string

const (
	N   Direction = "N"
	NNE Direction = "NNE"
	NE  Direction = "NE"
	ENE Direction = "ENE"
	E   Direction = "E"
	ESE Direction = "ESE"
	SE  Direction = "SE"
	SSE Direction = "SSE"
	S   Direction = "S"
	SSW Direction = "SSW"
	SW  Direction = "SW"
	WSW Direction = "WSW"
	W   Direction = "W"
	WNW Direction = "WNW"
	NW  Direction = "NW"
	NNW Direction = "NNW"
)

// bearingStep is the angle between two neighbouring compass points
const bearingStep = 22.5

// rose lists the compass points clockwise starting at N. A point's index times
// bearingStep is its bearing.
//
// Older clients used an eight point rose (N, NE, E, SE, S, SW, W, NW at 45 degrees). Those
// codes are a subset of this list with the same bearings, so they keep working, but the
// half-winds are no longer rejected.
var rose = [...]Direction{N, NNE, NE, ENE, E, ESE, SE, SSE, S, SSW, SW, WSW, W, WNW, NW, NNW}

var bearings = func() map[Direction]float64 {
	m := make(map[Direction]float64, len(rose))
	for i, d := range rose {
		m[d] = float64(i) * bearingStep
	}
	return m
}()

// Directions returns a copy of the compass points clockwise from N
func Directions() []Direction {
	return slices.Clone(rose[:])
}

// DirectionCodes returns the compass codes as strings in rose order
func DirectionCodes() []string {
	codes := make([]string, len(rose))
	for i, d := range rose {
		codes[i] = string(d)
	}
	return codes
}

// ParseDirection resolves a compass code, ignoring case
func ParseDirection(field string, code string) (Direction, error) {
	d := Direction(strings.ToUpper(code))
	if _, ok := bearings[d]; !ok {
		return "", &ValidationError{Field: field, Value: code, Allowed: DirectionCodes()}
	}
	return d, nil
}

// Bearing returns the direction in degrees, N = 0
func (d Direction) Bearing() float64 {
	return bearings[d]
}

// AngularSeparation returns the smaller arc between two directions, in [0, 180]
func AngularSeparation(a, b Direction) float64 {
	diff := a.Bearing() - b.Bearing()
	if diff < 0 {
		diff = -diff
	}
	if 360-diff < diff {
		return 360 - diff
	}
	return diff
}
