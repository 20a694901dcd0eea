package parameter

import "time"

// Tick scheduler
const (
	// DefaultTickInterval is the discrete step interval
	DefaultTickInterval = 250 * time.Millisecond

	// MinTickInterval and MaxTickInterval bound live tuning
	MinTickInterval = 10 * time.Millisecond
	MaxTickInterval = 5 * time.Second
)

// Visual interpolation
const (
	// DefaultLerpRate is the exponential approach rate per second
	DefaultLerpRate = 10.0

	// MinLerpRate and MaxLerpRate bound live tuning (debug overlay range)
	MinLerpRate = 0.0
	MaxLerpRate = 1000.0
)

// Chain seeding
const (
	DefaultSeedLength = 1
	MaxSeedLength     = 64
)

// Play field
const (
	// DefaultGridHalfSize spans cells [-10, 10] on both axes, matching a 20x20 plane
	DefaultGridHalfSize = 10
	MaxGridHalfSize     = 64

	DefaultTreatCount = 1
	MaxTreatCount     = 16

	// RenderLevel is the fixed vertical coordinate of every rendered segment
	RenderLevel = 0.0
)

// PresetTreatCells are the first treat cells used when at least two treats are configured
var PresetTreatCells = []struct{ X, Y int }{
	{X: -4, Y: -4},
	{X: 8, Y: 4},
}
