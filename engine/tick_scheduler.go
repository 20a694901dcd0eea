package engine

import (
	"fmt"
	"time"
)

// TickScheduler is a polled fixed-interval countdown
// Frame time is accumulated by Advance; a step fires once the accumulator
// reaches the interval, carrying the remainder into the next period
type TickScheduler struct {
	interval time.Duration
	elapsed  time.Duration

	ticks   int64
	dropped int64
}

// NewTickScheduler creates a scheduler with the given interval
func NewTickScheduler(interval time.Duration) (*TickScheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("new tick scheduler %v: %w", interval, ErrInvalidInterval)
	}
	return &TickScheduler{interval: interval}, nil
}

// Advance adds dt to the accumulator and reports whether a step fires
// At most one step fires per call; a backlog beyond one interval is folded
// into the sub-interval remainder and counted as dropped
func (ts *TickScheduler) Advance(dt time.Duration) bool {
	if dt > 0 {
		ts.elapsed += dt
	}
	if ts.elapsed < ts.interval {
		return false
	}

	ts.elapsed -= ts.interval
	if ts.elapsed >= ts.interval {
		ts.dropped += int64(ts.elapsed / ts.interval)
		ts.elapsed %= ts.interval
	}
	ts.ticks++
	return true
}

// SetInterval changes the interval, rescaling accumulated progress so the
// fraction of the current period already elapsed is preserved
func (ts *TickScheduler) SetInterval(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("set tick interval %v: %w", interval, ErrInvalidInterval)
	}
	if interval == ts.interval {
		return nil
	}

	progress := float64(ts.elapsed) / float64(ts.interval)
	elapsed := time.Duration(progress * float64(interval))
	if elapsed >= interval {
		elapsed = interval - 1
	}
	if elapsed < 0 {
		elapsed = 0
	}

	ts.interval = interval
	ts.elapsed = elapsed
	return nil
}

func (ts *TickScheduler) Interval() time.Duration { return ts.interval }

// Elapsed returns progress into the current period
func (ts *TickScheduler) Elapsed() time.Duration { return ts.elapsed }

// Ticks returns the number of steps fired
func (ts *TickScheduler) Ticks() int64 { return ts.ticks }

// Dropped returns the number of whole intervals folded away by stalls
func (ts *TickScheduler) Dropped() int64 { return ts.dropped }
