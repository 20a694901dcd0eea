package engine

import "errors"

var (
	// ErrInvalidInterval is returned for non-positive tick intervals
	ErrInvalidInterval = errors.New("tick interval must be positive")

	// ErrInvalidTuning is returned for tuning values that cannot be clamped
	ErrInvalidTuning = errors.New("invalid tuning value")
)
