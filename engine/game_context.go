package engine

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/gridsnake/event"
	"github.com/lixenwraith/gridsnake/input"
	"github.com/lixenwraith/gridsnake/parameter"
	"github.com/lixenwraith/gridsnake/status"
)

// Options configures a GameContext
type Options struct {
	TickInterval time.Duration
	LerpRate     float64
	GridHalfSize int
	TreatCount   int

	// TimeProvider defaults to the system clock
	TimeProvider TimeProvider
}

// DefaultOptions returns options populated from parameter defaults
func DefaultOptions() Options {
	return Options{
		TickInterval: parameter.DefaultTickInterval,
		LerpRate:     parameter.DefaultLerpRate,
		GridHalfSize: parameter.DefaultGridHalfSize,
		TreatCount:   parameter.DefaultTreatCount,
	}
}

// GameContext owns the world and the per-frame pipeline driving it
type GameContext struct {
	// ===== Immutable After Init =====
	World        *World
	Router       *EventRouter
	TimeProvider TimeProvider
	eventQueue   *event.EventQueue

	// ===== Atomic =====
	FrameNumber atomic.Int64
	quit        atomic.Bool

	// ===== Simulation Goroutine Exclusive =====
	Scheduler *TickScheduler
	lastFrame time.Time

	// Cached metric pointers
	statFrames   *atomic.Int64
	statTicks    *atomic.Int64
	statDropped  *atomic.Int64
	statTickMS   *status.AtomicFloat
	statLerpRate *status.AtomicFloat
}

// NewGameContext creates a world with resources, scheduler and event router wired
// The router is registered as a system at parameter.PriorityDispatch
func NewGameContext(opts Options) (*GameContext, error) {
	if opts.GridHalfSize < 1 || opts.GridHalfSize > parameter.MaxGridHalfSize {
		return nil, fmt.Errorf("grid half size %d out of range [1, %d]", opts.GridHalfSize, parameter.MaxGridHalfSize)
	}
	if opts.TreatCount < 0 || opts.TreatCount > parameter.MaxTreatCount {
		return nil, fmt.Errorf("treat count %d out of range [0, %d]", opts.TreatCount, parameter.MaxTreatCount)
	}
	if opts.TimeProvider == nil {
		opts.TimeProvider = NewTimeProvider()
	}

	world := NewWorld()
	res := world.Resource
	res.Tuning = NewTuningResource(opts.TickInterval, opts.LerpRate)
	res.Grid = &GridResource{HalfSize: opts.GridHalfSize, TreatCount: opts.TreatCount}

	scheduler, err := NewTickScheduler(res.Tuning.TickInterval())
	if err != nil {
		return nil, err
	}

	ctx := &GameContext{
		World:        world,
		TimeProvider: opts.TimeProvider,
		eventQueue:   event.NewEventQueue(),
		Scheduler:    scheduler,
		lastFrame:    opts.TimeProvider.Now(),
	}

	// Wire world to this context's frame and event source
	world.SetEventMetadata(ctx.eventQueue, &ctx.FrameNumber)

	ctx.Router = NewEventRouter(ctx.eventQueue)
	world.AddSystem(ctx.Router)

	reg := res.Status
	ctx.statFrames = reg.Ints.Get("engine.frames")
	ctx.statTicks = reg.Ints.Get("engine.ticks")
	ctx.statDropped = reg.Ints.Get("engine.dropped")
	ctx.statTickMS = reg.Floats.Get("tuning.tick_ms")
	ctx.statLerpRate = reg.Floats.Get("tuning.lerp_rate")
	ctx.publishTuning()

	return ctx, nil
}

// RegisterEventHandler adds a handler to the router, call before the first Step
func (ctx *GameContext) RegisterEventHandler(h EventHandler) {
	ctx.Router.Register(h)
}

// PushEvent emits an event stamped with the current frame
func (ctx *GameContext) PushEvent(t event.EventType, payload any) {
	ctx.World.PushEvent(t, payload)
}

// Quit reports whether a quit request has been observed
func (ctx *GameContext) Quit() bool {
	return ctx.quit.Load()
}

// Frame runs one step using wall-clock delta from the TimeProvider
func (ctx *GameContext) Frame(snap input.Snapshot) bool {
	now := ctx.TimeProvider.Now()
	dt := now.Sub(ctx.lastFrame)
	ctx.lastFrame = now
	if dt > parameter.MaxFrameDelta {
		dt = parameter.MaxFrameDelta
	}
	return ctx.Step(dt, snap)
}

// Step runs the frame pipeline with an explicit delta
// Returns false once quit is requested; the frame is then not simulated
func (ctx *GameContext) Step(dt time.Duration, snap input.Snapshot) bool {
	if snap.Quit {
		ctx.quit.Store(true)
	}
	if ctx.quit.Load() {
		return false
	}
	if dt < 0 {
		dt = 0
	}

	ctx.World.RunSafe(func() {
		frame := ctx.FrameNumber.Add(1)
		res := ctx.World.Resource

		res.Time.Update(ctx.TimeProvider.Now(), dt, frame)
		res.Input.Snapshot = snap

		if interval := res.Tuning.TickInterval(); interval != ctx.Scheduler.Interval() {
			if err := ctx.Scheduler.SetInterval(interval); err != nil {
				log.Printf("engine: %v", err)
			}
		}

		res.Tick.Fired = ctx.Scheduler.Advance(dt)
		res.Tick.Count = ctx.Scheduler.Ticks()

		ctx.World.UpdateLocked()

		ctx.statFrames.Store(frame)
		ctx.statTicks.Store(ctx.Scheduler.Ticks())
		ctx.statDropped.Store(ctx.Scheduler.Dropped())
		ctx.publishTuning()
	})
	return true
}

func (ctx *GameContext) publishTuning() {
	tuning := ctx.World.Resource.Tuning
	ctx.statTickMS.Set(float64(tuning.TickInterval().Milliseconds()))
	ctx.statLerpRate.Set(tuning.LerpRate())
}
