package distance

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConditions() Conditions {
	return Conditions{
		Temperature:   "90",
		WindSpeed:     "8 to 12 mph",
		WindDirection: "S",
		Humidity:      "70",
	}
}

func TestConditionsParse(t *testing.T) {
	snapshot, err := validConditions().Parse()
	require.NoError(t, err)

	assert.Equal(t, 90.0, snapshot.Temperature)
	assert.Equal(t, 10.0, snapshot.WindSpeed)
	assert.Equal(t, S, snapshot.WindDirection)
	assert.Equal(t, 70.0, snapshot.Humidity)
	assert.False(t, snapshot.HasFacing())
}

func TestConditionsParse_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Conditions)
		field  string
	}{
		{"missing temperature", func(c *Conditions) { c.Temperature = "" }, "temperature"},
		{"non numeric temperature", func(c *Conditions) { c.Temperature = "warm" }, "temperature"},
		{"missing wind speed", func(c *Conditions) { c.WindSpeed = " " }, "windSpeed"},
		{"malformed wind speed", func(c *Conditions) { c.WindSpeed = "breezy" }, "windSpeed"},
		{"missing wind direction", func(c *Conditions) { c.WindDirection = "" }, "windDirection"},
		{"unknown wind direction", func(c *Conditions) { c.WindDirection = "XX" }, "windDirection"},
		{"unknown facing direction", func(c *Conditions) { c.FacingDirection = "left" }, "facingDirection"},
		{"missing humidity", func(c *Conditions) { c.Humidity = "" }, "humidity"},
		{"NaN temperature", func(c *Conditions) { c.Temperature = "NaN" }, "temperature"},
		{"infinite temperature", func(c *Conditions) { c.Temperature = "-infinity" }, "temperature"},
		{"infinite humidity", func(c *Conditions) { c.Humidity = "Inf" }, "humidity"},
		{"wind speed out of float range", func(c *Conditions) { c.WindSpeed = "1" + strings.Repeat("0", 400) + " mph" }, "windSpeed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conditions := validConditions()
			tt.mutate(&conditions)

			_, err := conditions.Parse()

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr), "got %v", err)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestConditionsParse_WindSpeedKeepsParseError(t *testing.T) {
	conditions := validConditions()
	conditions.WindSpeed = "gale"

	_, err := conditions.Parse()

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Contains(t, err.Error(), "gale")
}

func TestBatchCalculate_Sweep(t *testing.T) {
	clubs := []ClubDistance{{Name: "Driver", BaseDistance: 250}, {Name: "7i", BaseDistance: 150}}

	results, err := BatchCalculate(clubs, validConditions())
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "Driver", results[0].ClubName)
	assert.Equal(t, 250.0, results[0].OriginalDistance)
	assert.Nil(t, results[0].AdjustedDistance)
	assert.Len(t, results[0].AdjustedDistances, 16)
	assert.Equal(t, 239.4, results[0].AdjustedDistances["N"])

	assert.Equal(t, "7i", results[1].ClubName)
	assert.Equal(t, 139.4, results[1].AdjustedDistances["N"])
	assert.Equal(t, 169.4, results[1].AdjustedDistances["S"])
}

func TestBatchCalculate_SingleDirection(t *testing.T) {
	conditions := validConditions()
	conditions.FacingDirection = "n"

	results, err := BatchCalculate([]ClubDistance{{Name: "7i", BaseDistance: 150}}, conditions)
	require.NoError(t, err)
	require.Len(t, results, 1)

	require.NotNil(t, results[0].AdjustedDistance)
	assert.InDelta(t, 139.4, *results[0].AdjustedDistance, 1e-9)
	assert.Nil(t, results[0].AdjustedDistances)
}

func TestBatchCalculate_NoClubs(t *testing.T) {
	_, err := BatchCalculate(nil, Conditions{})

	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "no golf clubs found for this user", err.Error())
}

func TestBatchCalculate_MissingTemperatureAbortsWholeBatch(t *testing.T) {
	conditions := validConditions()
	conditions.Temperature = ""

	results, err := BatchCalculate([]ClubDistance{{Name: "PW", BaseDistance: 120}, {Name: "9i", BaseDistance: 130}}, conditions)
	assert.Nil(t, results)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "temperature is required", err.Error())
}

func TestBatchCalculate_OverflowIsValidationError(t *testing.T) {
	conditions := validConditions()
	conditions.WindSpeed = "1" + strings.Repeat("0", 308) + " mph"

	results, err := BatchCalculate([]ClubDistance{{Name: "Driver", BaseDistance: 250}}, conditions)
	assert.Nil(t, results)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr), "got %v", err)
	assert.Equal(t, "adjustedDistance", validationErr.Field)
}
