package engine

import "errors"

var (
	// ErrInvalidSize indicates a negative sequence size.
	ErrInvalidSize = errors.New("engine: sequence size must be non-negative")

	// ErrUnknownAlgorithm indicates an algorithm type outside the closed set.
	ErrUnknownAlgorithm = errors.New("engine: unknown algorithm")

	// ErrSpeedBounds indicates a speed range that is empty or not positive.
	ErrSpeedBounds = errors.New("engine: speed bounds must satisfy 0 < min <= max")
)
