package input

import "github.com/lixenwraith/gridsnake/core"

// Snapshot is the per-frame state of the directional and quit controls
type Snapshot struct {
	Left, Right, Up, Down bool
	Quit                  bool
}

// Any reports whether any control is active
func (s Snapshot) Any() bool {
	return s.Left || s.Right || s.Up || s.Down || s.Quit
}

// Held reports whether the control for a is active
func (s Snapshot) Held(a Action) bool {
	switch a {
	case ActionLeft:
		return s.Left
	case ActionRight:
		return s.Right
	case ActionUp:
		return s.Up
	case ActionDown:
		return s.Down
	case ActionQuit:
		return s.Quit
	}
	return false
}

// Set marks the control for a as active
func (s *Snapshot) Set(a Action) {
	switch a {
	case ActionLeft:
		s.Left = true
	case ActionRight:
		s.Right = true
	case ActionUp:
		s.Up = true
	case ActionDown:
		s.Down = true
	case ActionQuit:
		s.Quit = true
	}
}

// DirectionPriority is the fixed order in which simultaneous directions are applied
// The last one that passes the anti-reversal check wins
var DirectionPriority = [...]Action{ActionLeft, ActionRight, ActionUp, ActionDown}

// ActionDelta maps a directional action to its grid step
// Local convention: left is +X, up is +Y
func ActionDelta(a Action) core.Point {
	switch a {
	case ActionLeft:
		return core.Point{X: 1, Y: 0}
	case ActionRight:
		return core.Point{X: -1, Y: 0}
	case ActionUp:
		return core.Point{X: 0, Y: 1}
	case ActionDown:
		return core.Point{X: 0, Y: -1}
	}
	return core.Point{}
}
