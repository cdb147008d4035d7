package distance

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWindSpeed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"single value", "12 mph", 12},
		{"range", "8 to 12 mph", 10},
		{"upper case", "8 TO 12 MPH", 10},
		{"no spaces", "8to12mph", 10},
		{"extra spaces", "  5   to   10   mph ", 7.5},
		{"zero", "0 mph", 0},
		{"glued unit", "15mph", 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWindSpeed(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseWindSpeed_Invalid(t *testing.T) {
	for _, input := range []string{"abc", "", "12", "12.5 mph", "mph", "8 to mph", "12 kph", "-3 mph", "12 mph gusting"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseWindSpeed(input)
			require.Error(t, err)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, input, parseErr.Input)
			assert.Contains(t, err.Error(), input)
		})
	}
}

func TestParseWindSpeed_TooLarge(t *testing.T) {
	huge := "1" + strings.Repeat("0", 400)
	for _, input := range []string{huge + " mph", "8 to " + huge + " mph"} {
		_, err := ParseWindSpeed(input)

		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr), "got %v", err)
	}

	// each bound fits a float64 but their sum does not
	big := "17" + strings.Repeat("0", 307)
	got, err := ParseWindSpeed(big + " to " + big + " mph")
	require.NoError(t, err)
	assert.InDelta(t, 1.7e308, got, 1e293)
}

func TestAngularSeparation(t *testing.T) {
	for _, a := range Directions() {
		assert.Zero(t, AngularSeparation(a, a), "separation of %s with itself", a)

		for _, b := range Directions() {
			sep := AngularSeparation(a, b)
			assert.Equal(t, sep, AngularSeparation(b, a), "symmetry %s/%s", a, b)
			assert.GreaterOrEqual(t, sep, 0.0)
			assert.LessOrEqual(t, sep, 180.0)
		}
	}

	assert.Equal(t, 22.5, AngularSeparation(N, NNW))
	assert.Equal(t, 90.0, AngularSeparation(E, S))
	assert.Equal(t, 157.5, AngularSeparation(NNE, S))
}

func TestImpactFactor(t *testing.T) {
	assert.Equal(t, 1.5, ImpactFactor(0))
	assert.Equal(t, -1.5, ImpactFactor(180))
	assert.InDelta(t, 0, ImpactFactor(90), 1e-12)
	assert.InDelta(t, 1.5*math.Sqrt2/2, ImpactFactor(45), 1e-12)
	assert.InDelta(t, -1.5*math.Sqrt2/2, ImpactFactor(135), 1e-12)
}

func TestWindAdjustment(t *testing.T) {
	t.Run("same direction is a tailwind", func(t *testing.T) {
		for _, d := range Directions() {
			got, err := WindAdjustment(10, string(d), string(d))
			require.NoError(t, err)
			assert.Equal(t, 15.0, got)
		}
	})

	t.Run("opposite direction is a headwind", func(t *testing.T) {
		for i, d := range Directions() {
			opposite := Directions()[(i+8)%len(rose)]
			got, err := WindAdjustment(10, string(d), string(opposite))
			require.NoError(t, err)
			assert.Equal(t, -15.0, got)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		got, err := WindAdjustment(4, "sw", "Sw")
		require.NoError(t, err)
		assert.Equal(t, 6.0, got)
	})

	t.Run("unknown wind direction", func(t *testing.T) {
		_, err := WindAdjustment(4, "XX", "N")

		var validationErr *ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "windDirection", validationErr.Field)
		assert.Equal(t, "XX", validationErr.Value)
		assert.Equal(t, DirectionCodes(), validationErr.Allowed)
		assert.Contains(t, err.Error(), "XX")
		assert.Contains(t, err.Error(), "N, NNE, NE, ENE, E, ESE, SE, SSE, S, SSW, SW, WSW, W, WNW, NW, NNW")
	})

	t.Run("unknown facing direction", func(t *testing.T) {
		_, err := WindAdjustment(4, "N", "up")

		var validationErr *ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "facingDirection", validationErr.Field)
	})
}

func TestDirectionBearings(t *testing.T) {
	require.Len(t, Directions(), 16)
	assert.Equal(t, 0.0, N.Bearing())
	assert.Equal(t, 90.0, E.Bearing())
	assert.Equal(t, 180.0, S.Bearing())
	assert.Equal(t, 270.0, W.Bearing())
	assert.Equal(t, 337.5, NNW.Bearing())
}

func TestDirections_ReturnsCopy(t *testing.T) {
	directions := Directions()
	directions[0], directions[8] = directions[8], directions[0]
	codes := DirectionCodes()
	codes[1] = "XX"

	assert.Equal(t, N, Directions()[0])
	assert.Equal(t, "NNE", DirectionCodes()[1])
	assert.Equal(t, 0.0, N.Bearing())

	got, err := AdjustedDistancesAllDirections(150, 70, 10, "N", 50)
	require.NoError(t, err)
	assert.Equal(t, 165.0, got["N"])
	assert.Equal(t, 135.0, got["S"])
}
