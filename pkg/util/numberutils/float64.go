package numberutils

import (
	"strconv"
	"strings"
)

// ToFloat64WithError converts the given string, ignoring surrounding spaces, to a float64.
func ToFloat64WithError(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// IsFloat64InRange checks if the given number is within the specified range (inclusive).
func IsFloat64InRange(num, min, max float64) bool {
	return num >= min && num <= max
}

// FormatFloat64 renders a float with the shortest representation that round-trips.
func FormatFloat64(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
