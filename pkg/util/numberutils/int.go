package numberutils

import (
	"strconv"
	"strings"
)

// ToIntWithDefault converts the given string, ignoring surrounding spaces, to an integer.
// Blank or malformed input gives defaultVal.
func ToIntWithDefault(s string, defaultVal int) int {
	if i, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return i
	}
	return defaultVal
}

// ClampInt bounds number to the inclusive range [min, max].
func ClampInt(number, min, max int) int {
	return MinInt(MaxInt(number, min), max)
}

func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// IsIntPositive checks if the given number is positive.
func IsIntPositive(number int) bool {
	return number > 0
}
