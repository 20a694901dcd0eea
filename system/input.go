package system

import (
	"github.com/lixenwraith/gridsnake/component"
	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/input"
	"github.com/lixenwraith/gridsnake/parameter"
)

// InputSystem turns the frame's input snapshot into the head's direction
type InputSystem struct {
	world *engine.World
}

func NewInputSystem(world *engine.World) engine.System {
	return &InputSystem{world: world}
}

func (s *InputSystem) Priority() int {
	return parameter.PriorityInput
}

func (s *InputSystem) Update() {
	snap := s.world.Resource.Input.Snapshot
	if !snap.Left && !snap.Right && !snap.Up && !snap.Down {
		return
	}

	cs := &s.world.Component
	for _, head := range cs.Head.All() {
		pos, ok := cs.Position.Get(head)
		if !ok {
			continue
		}
		dir, _ := cs.Direction.Get(head)
		resolved := ResolveDirection(snap, pos.Moved(), dir.Delta)
		if resolved != dir.Delta {
			cs.Direction.Set(head, component.DirectionComponent{Delta: resolved})
		}
	}
}

// ResolveDirection applies held directions in priority order and returns the winner
// A candidate opposite to the last step (moved) is rejected; with no accepted
// candidate current is returned unchanged
func ResolveDirection(snap input.Snapshot, moved, current core.Point) core.Point {
	result := current
	reverse := moved.Neg()
	for _, action := range input.DirectionPriority {
		if !snap.Held(action) {
			continue
		}
		candidate := input.ActionDelta(action)
		if !moved.IsZero() && candidate == reverse {
			continue
		}
		result = candidate
	}
	return result
}
