package system

import (
	"fmt"
	"log"
	"sync/atomic"

	"github.com/lixenwraith/gridsnake/component"
	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/event"
)

// GrowthSystem splices a new tail segment for each consumed treat
// The treat's entity becomes the new segment
type GrowthSystem struct {
	world *engine.World

	statLength  *atomic.Int64
	statGrown   *atomic.Int64
	statIgnored *atomic.Int64
}

func NewGrowthSystem(world *engine.World) *GrowthSystem {
	reg := world.Resource.Status
	return &GrowthSystem{
		world:       world,
		statLength:  reg.Ints.Get("snake.length"),
		statGrown:   reg.Ints.Get("growth.segments"),
		statIgnored: reg.Ints.Get("growth.ignored"),
	}
}

func (s *GrowthSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventTreatConsumed}
}

func (s *GrowthSystem) HandleEvent(ev event.GameEvent) {
	if payload, ok := ev.Payload.(*event.TreatConsumedPayload); ok {
		s.Grow(payload.Treat)
	}
}

// Grow appends e as the new tail at the old tail's previous cell
// Returns false when e is 0, was never allocated, or already is a segment
func (s *GrowthSystem) Grow(e core.Entity) bool {
	w := s.world
	cs := &w.Component

	switch {
	case e == 0:
		log.Printf("growth: ignoring notification for null entity")
		s.statIgnored.Add(1)
		return false
	case !w.Exists(e):
		log.Printf("growth: ignoring notification for unknown entity %d", e)
		s.statIgnored.Add(1)
		return false
	case cs.Segment.Has(e):
		log.Printf("growth: ignoring notification for existing segment %d", e)
		s.statIgnored.Add(1)
		return false
	}

	tails := cs.Tail.All()
	switch len(tails) {
	case 0:
		panic(fmt.Errorf("growth of %d: %w", e, ErrNoTail))
	case 1:
	default:
		panic(fmt.Errorf("growth of %d: tails %v: %w", e, tails, ErrMultipleTails))
	}
	oldTail := tails[0]
	oldPos, _ := cs.Position.Get(oldTail)
	oldSeg, _ := cs.Segment.Get(oldTail)

	oldSeg.Link = e
	cs.Segment.Set(oldTail, oldSeg)

	// Drop treat state if the notification arrived before detection stripped it
	cs.Treat.Remove(e)
	cs.Direction.Remove(e)

	cell := oldPos.Prev
	cs.Position.Set(e, component.PositionComponent{Position: cell, Prev: cell})
	cs.Segment.Set(e, component.SegmentComponent{Link: 0})
	cs.Render.Set(e, component.RenderComponent{Planar: cell.Vec2()})
	cs.Tail.Set(e, component.TailComponent{})
	cs.Tail.Remove(oldTail)

	length := cs.Segment.Count()
	s.statLength.Store(int64(length))
	s.statGrown.Add(1)

	w.PushEvent(event.EventSegmentAdded, &event.SegmentAddedPayload{
		Segment:      e,
		PreviousTail: oldTail,
		Length:       length,
	})
	return true
}
