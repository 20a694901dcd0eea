package system

import (
	"fmt"

	"github.com/lixenwraith/gridsnake/component"
	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/parameter"
)

// SeedChain creates a chain of the given length with its head at origin
// Body segments trail opposite to dir (opposite to left when dir is zero)
// Every segment starts with prev equal to position; only the head carries dir
func SeedChain(w *engine.World, length int, dir, origin core.Point) (core.Entity, error) {
	if length < 1 || length > parameter.MaxSeedLength {
		return 0, fmt.Errorf("seed length %d out of range [1, %d]", length, parameter.MaxSeedLength)
	}
	if !isUnitOrZero(dir) {
		return 0, fmt.Errorf("initial direction %v is not a unit step", dir)
	}
	if w.Component.Segment.Count() > 0 {
		return 0, fmt.Errorf("chain already seeded with %d segments", w.Component.Segment.Count())
	}

	trail := dir.Neg()
	if dir.IsZero() {
		trail = core.Point{X: -1}
	}

	cs := &w.Component
	entities := make([]core.Entity, length)
	for i := range entities {
		entities[i] = w.CreateEntity()
	}

	for i, e := range entities {
		cell := origin.Add(core.Point{X: trail.X * i, Y: trail.Y * i})
		var link core.Entity
		if i+1 < length {
			link = entities[i+1]
		}
		cs.Position.Set(e, component.PositionComponent{Position: cell, Prev: cell})
		cs.Segment.Set(e, component.SegmentComponent{Link: link})
		cs.Render.Set(e, component.RenderComponent{Planar: cell.Vec2()})
	}

	head, tail := entities[0], entities[length-1]
	cs.Head.Set(head, component.HeadComponent{})
	cs.Tail.Set(tail, component.TailComponent{})
	cs.Direction.Set(head, component.DirectionComponent{Delta: dir})

	w.Resource.Status.Ints.Get("snake.length").Store(int64(length))
	return head, nil
}

func isUnitOrZero(p core.Point) bool {
	ax, ay := p.X, p.Y
	if ax < 0 {
		ax = -ax
	}
	if ay < 0 {
		ay = -ay
	}
	return ax+ay <= 1
}
