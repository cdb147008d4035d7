package numberutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToIntWithDefault(t *testing.T) {
	assert.Equal(t, 3, ToIntWithDefault("3", 0))
	assert.Equal(t, 10, ToIntWithDefault("ten", 10))
	assert.Equal(t, 10, ToIntWithDefault("", 10))
	assert.Equal(t, 7, ToIntWithDefault(" 7 ", 0))
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 1, ClampInt(-5, 1, 100))
	assert.Equal(t, 50, ClampInt(50, 1, 100))
	assert.Equal(t, 100, ClampInt(500, 1, 100))
}

func TestToFloat64WithError(t *testing.T) {
	v, err := ToFloat64WithError(" 72.5 ")
	require.NoError(t, err)
	assert.Equal(t, 72.5, v)

	_, err = ToFloat64WithError("hot")
	assert.Error(t, err)
}

func TestIsFloat64InRange(t *testing.T) {
	assert.True(t, IsFloat64InRange(-90, -90, 90))
	assert.False(t, IsFloat64InRange(90.1, -90, 90))
}

func TestFormatFloat64(t *testing.T) {
	assert.Equal(t, "72", FormatFloat64(72))
	assert.Equal(t, "-74.006", FormatFloat64(-74.006))
}
