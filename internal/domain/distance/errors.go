package distance

import (
	"fmt"
	"strings"
)

// ParseError is returned when a wind speed text does not match the accepted format
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("error parsing wind speed %q: use formats like '12 mph' or '8 to 12 mph'", e.Input)
}

// ValidationError is returned when a weather field is missing or invalid
type ValidationError struct {
	Field   string
	Value   string
	Allowed []string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Value == "" {
		return fmt.Sprintf("%s is required", e.Field)
	}
	if len(e.Allowed) > 0 {
		return fmt.Sprintf("invalid %s %q, use %s", e.Field, e.Value, strings.Join(e.Allowed, ", "))
	}
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NotFoundError is returned when a batch calculation has no clubs to work on
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s found for this user", e.Resource)
}
