package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single frame's elapsed time after a stall (debugger, suspend)
	MaxFrameDelta = 1 * time.Second

	// EventLoopIterations is the number of dispatch passes per frame, so events raised by handlers settle in the same frame
	EventLoopIterations = 16
)

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// System priorities, lower runs first
// Order is the per-frame pipeline: intent, propagation, treat detection, growth (dispatch), spawn, interpolation
const (
	PriorityInput         = 10
	PriorityChain         = 20
	PriorityTreat         = 30
	PriorityDispatch      = 40
	PrioritySpawn         = 50
	PriorityInterpolation = 60
)
