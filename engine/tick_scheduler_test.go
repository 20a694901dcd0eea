package engine

import (
	"errors"
	"testing"
	"time"
)

func mustScheduler(t *testing.T, interval time.Duration) *TickScheduler {
	t.Helper()
	ts, err := NewTickScheduler(interval)
	if err != nil {
		t.Fatalf("NewTickScheduler(%v): %v", interval, err)
	}
	return ts
}

func TestTickScheduler_Accumulates(t *testing.T) {
	ts := mustScheduler(t, 250*time.Millisecond)

	steps := []struct {
		dt   time.Duration
		fire bool
	}{
		{100 * time.Millisecond, false},
		{100 * time.Millisecond, false},
		{100 * time.Millisecond, true}, // 300ms, 50ms carried
		{150 * time.Millisecond, false},
		{50 * time.Millisecond, true}, // Exactly one interval
		{0, false},
	}
	for i, s := range steps {
		if got := ts.Advance(s.dt); got != s.fire {
			t.Errorf("step %d: Advance(%v) = %v, want %v", i, s.dt, got, s.fire)
		}
	}
	if ts.Ticks() != 2 {
		t.Errorf("Expected 2 ticks, got %d", ts.Ticks())
	}
	if ts.Elapsed() != 0 {
		t.Errorf("Expected no carry, got %v", ts.Elapsed())
	}
}

func TestTickScheduler_StallDoesNotBurst(t *testing.T) {
	ts := mustScheduler(t, 250*time.Millisecond)

	if !ts.Advance(1100 * time.Millisecond) {
		t.Fatal("Expected a step after a stall")
	}
	if ts.Ticks() != 1 {
		t.Errorf("Expected exactly 1 tick after stall, got %d", ts.Ticks())
	}
	if ts.Dropped() != 3 {
		t.Errorf("Expected 3 dropped intervals, got %d", ts.Dropped())
	}
	if ts.Elapsed() != 100*time.Millisecond {
		t.Errorf("Expected 100ms remainder, got %v", ts.Elapsed())
	}
	if ts.Advance(0) {
		t.Error("Folded backlog must not fire on the next frame")
	}
}

func TestTickScheduler_SetIntervalRescales(t *testing.T) {
	ts := mustScheduler(t, 250*time.Millisecond)
	ts.Advance(125 * time.Millisecond)

	if err := ts.SetInterval(100 * time.Millisecond); err != nil {
		t.Fatalf("SetInterval: %v", err)
	}
	if ts.Elapsed() != 50*time.Millisecond {
		t.Errorf("Expected progress rescaled to 50ms, got %v", ts.Elapsed())
	}
	if ts.Advance(49 * time.Millisecond) {
		t.Error("Should not fire before the rescaled period completes")
	}
	if !ts.Advance(1 * time.Millisecond) {
		t.Error("Should fire when the rescaled period completes")
	}
}

func TestTickScheduler_SetIntervalNeverDoubleFires(t *testing.T) {
	ts := mustScheduler(t, 250*time.Millisecond)
	ts.Advance(249 * time.Millisecond)

	if err := ts.SetInterval(10 * time.Millisecond); err != nil {
		t.Fatalf("SetInterval: %v", err)
	}
	if ts.Elapsed() >= ts.Interval() {
		t.Errorf("Elapsed %v must stay below interval %v", ts.Elapsed(), ts.Interval())
	}
	if !ts.Advance(time.Millisecond) {
		t.Error("Expected a single fire")
	}
	if ts.Advance(0) {
		t.Error("Expected no second fire")
	}
}

func TestTickScheduler_RejectsNonPositive(t *testing.T) {
	if _, err := NewTickScheduler(0); !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("Expected ErrInvalidInterval, got %v", err)
	}

	ts := mustScheduler(t, 250*time.Millisecond)
	if err := ts.SetInterval(-time.Millisecond); !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("Expected ErrInvalidInterval, got %v", err)
	}
	if ts.Interval() != 250*time.Millisecond {
		t.Errorf("Rejected interval must not be applied, got %v", ts.Interval())
	}
}
