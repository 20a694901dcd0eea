package engine

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/gridsnake/event"
	"github.com/lixenwraith/gridsnake/input"
	"github.com/lixenwraith/gridsnake/parameter"
	"github.com/lixenwraith/gridsnake/status"
)

// Resource holds singleton simulation state shared by systems, accessed via World.Resource
type Resource struct {
	Time   *TimeResource
	Tick   *TickResource
	Input  *InputResource
	Tuning *TuningResource
	Grid   *GridResource
	Event  *EventQueueResource

	// Telemetry
	Status *status.Registry
}

// NewResource creates resources populated with defaults
func NewResource() *Resource {
	return &Resource{
		Time:   &TimeResource{},
		Tick:   &TickResource{},
		Input:  &InputResource{},
		Tuning: NewTuningResource(parameter.DefaultTickInterval, parameter.DefaultLerpRate),
		Grid: &GridResource{
			HalfSize:   parameter.DefaultGridHalfSize,
			TreatCount: parameter.DefaultTreatCount,
		},
		Status: status.NewRegistry(),
	}
}

// TimeResource carries per-frame timing, updated at the start of each frame
type TimeResource struct {
	RealTime    time.Time
	DeltaTime   time.Duration
	FrameNumber int64
}

// Update modifies fields in place, must be called under the update lock
func (tr *TimeResource) Update(realTime time.Time, dt time.Duration, frame int64) {
	tr.RealTime = realTime
	tr.DeltaTime = dt
	tr.FrameNumber = frame
}

// DeltaSeconds returns the frame delta in seconds
func (tr *TimeResource) DeltaSeconds() float64 {
	return tr.DeltaTime.Seconds()
}

// TickResource reports whether the discrete step fires this frame
type TickResource struct {
	Fired bool
	Count int64
}

// InputResource holds the input snapshot for the current frame
type InputResource struct {
	Snapshot input.Snapshot
}

// GridResource describes the playable plane, cells in [-HalfSize, HalfSize] on both axes
type GridResource struct {
	HalfSize   int
	TreatCount int
}

// Contains reports whether (x, y) lies on the plane
func (g *GridResource) Contains(x, y int) bool {
	return x >= -g.HalfSize && x <= g.HalfSize && y >= -g.HalfSize && y <= g.HalfSize
}

// EventQueueResource exposes the event queue to systems
type EventQueueResource struct {
	Queue *event.EventQueue
}

// TuningResource holds live-adjustable simulation parameters
// Written from debug goroutines, read by the simulation at frame start
type TuningResource struct {
	tickMillis atomic.Int64
	lerpRate   status.AtomicFloat
}

// NewTuningResource creates tuning state, clamping both values into range
func NewTuningResource(tick time.Duration, lerp float64) *TuningResource {
	t := &TuningResource{}
	t.SetTickInterval(tick)
	if err := t.SetLerpRate(lerp); err != nil {
		t.lerpRate.Set(parameter.DefaultLerpRate)
	}
	return t
}

// TickInterval returns the discrete step interval
func (t *TuningResource) TickInterval() time.Duration {
	return time.Duration(t.tickMillis.Load()) * time.Millisecond
}

// SetTickInterval stores d clamped to [MinTickInterval, MaxTickInterval], truncated to whole ms
// Returns the stored value
func (t *TuningResource) SetTickInterval(d time.Duration) time.Duration {
	d = max(parameter.MinTickInterval, min(d, parameter.MaxTickInterval))
	t.tickMillis.Store(d.Milliseconds())
	return t.TickInterval()
}

// LerpRate returns the interpolation rate in 1/s
func (t *TuningResource) LerpRate() float64 {
	return t.lerpRate.Get()
}

// SetLerpRate stores rate clamped to [MinLerpRate, MaxLerpRate]
// NaN is rejected and leaves the current value untouched
func (t *TuningResource) SetLerpRate(rate float64) error {
	if math.IsNaN(rate) {
		return fmt.Errorf("lerp rate: %w", ErrInvalidTuning)
	}
	t.lerpRate.Set(max(parameter.MinLerpRate, min(rate, parameter.MaxLerpRate)))
	return nil
}
