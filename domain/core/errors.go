package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrInvalidInput marks input that is not an ordered iterable or has the
	// wrong shape for the requested operation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientData marks a normalized sample that is empty or too small
	// for the requested statistic.
	ErrInsufficientData = errors.New("insufficient data for analysis")

	// ErrInvalidArgument marks an unrecognized method or option value.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDimensionMismatch marks paired-sample operations given
	// unequal-length inputs.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

// Error constructors with context
func NewInvalidInputError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, reason)
}

func NewInsufficientDataError(operation string, n int) error {
	return fmt.Errorf("%w: %s needs more observations, got %d", ErrInsufficientData, operation, n)
}

func NewInvalidArgumentError(name string, value any) error {
	return fmt.Errorf("%w: unrecognized %s %v", ErrInvalidArgument, name, value)
}

func NewDimensionMismatchError(n1, n2 int) error {
	return fmt.Errorf("%w: paired samples must have equal length, got %d and %d", ErrDimensionMismatch, n1, n2)
}

// Error checking helpers
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func IsInsufficientData(err error) bool {
	return errors.Is(err, ErrInsufficientData)
}

func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

func IsDimensionMismatch(err error) bool {
	return errors.Is(err, ErrDimensionMismatch)
}
