package engine

import "time"

// TestEpoch is the start time of mock clocks created by NewTestGameContext
var TestEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// NewTestGameContext creates a context with default options and a mock clock
func NewTestGameContext() (*GameContext, *MockTimeProvider) {
	clock := NewMockTimeProvider(TestEpoch)
	opts := DefaultOptions()
	opts.TimeProvider = clock
	ctx, err := NewGameContext(opts)
	if err != nil {
		panic(err)
	}
	return ctx, clock
}
