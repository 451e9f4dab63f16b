package models

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidTimestamp indicates a departure/arrival time that is not ISO-8601 with an offset
	ErrInvalidTimestamp = errors.New("invalid timestamp")

	// ErrMissingRequiredAttribute indicates a required itinerary attribute is absent
	ErrMissingRequiredAttribute = errors.New("missing required attribute")

	// ErrMalformedStopEntry indicates a stop that cannot be described
	ErrMalformedStopEntry = errors.New("malformed stop entry")

	// ErrInvalidAttribute indicates an attribute that is present but has the wrong shape
	ErrInvalidAttribute = errors.New("invalid attribute")
)

// AttributeError ties a failure to the itinerary attribute that caused it
type AttributeError struct {
	Attribute string
	Value     string
	Err       error
}

func (e *AttributeError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %v (got %q)", e.Attribute, e.Err, e.Value)
	}
	return fmt.Sprintf("%s: %v", e.Attribute, e.Err)
}

// Unwrap returns the underlying sentinel error
func (e *AttributeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for AttributeError
func (e *AttributeError) Is(target error) bool {
	return target == e.Err
}

// NewAttributeError creates a new attribute error
func NewAttributeError(attribute, value string, err error) *AttributeError {
	return &AttributeError{
		Attribute: attribute,
		Value:     value,
		Err:       err,
	}
}

// ErrMissing reports a required attribute that was not set.
func ErrMissing(attribute string) error {
	return NewAttributeError(attribute, "", ErrMissingRequiredAttribute)
}

// ErrTimestamp reports an attribute holding an unusable timestamp.
func ErrTimestamp(attribute, value string) error {
	return NewAttributeError(attribute, value, ErrInvalidTimestamp)
}

// ErrStop reports a malformed entry in the stops sequence.
func ErrStop(index int, reason string) error {
	return NewAttributeError(fmt.Sprintf("stops[%d]", index), reason, ErrMalformedStopEntry)
}
