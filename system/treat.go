package system

import (
	"sync/atomic"

	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/event"
	"github.com/lixenwraith/gridsnake/parameter"
)

// TreatSystem detects treats covered by a segment after each step
type TreatSystem struct {
	engine.SystemBase

	statConsumed *atomic.Int64
}

func NewTreatSystem(world *engine.World) engine.System {
	return &TreatSystem{
		SystemBase:   engine.NewSystemBase(world),
		statConsumed: world.Resource.Status.Ints.Get("treat.consumed"),
	}
}

func (s *TreatSystem) Priority() int {
	return parameter.PriorityTreat
}

func (s *TreatSystem) Update() {
	if !s.Resource.Tick.Fired {
		return
	}

	w := s.World
	cs := s.Component

	treats := w.Query().With(cs.Treat).With(cs.Position).Execute()
	if len(treats) == 0 {
		return
	}

	// Sorted query, first writer per cell is the lowest segment ID
	occupant := make(map[core.Point]core.Entity)
	for _, e := range w.Query().With(cs.Segment).With(cs.Position).Execute() {
		pos, _ := cs.Position.Get(e)
		if _, taken := occupant[pos.Position]; !taken {
			occupant[pos.Position] = e
		}
	}

	for _, treat := range treats {
		pos, _ := cs.Position.Get(treat)
		eater, hit := occupant[pos.Position]
		if !hit {
			continue
		}

		cs.Treat.Remove(treat)
		cs.Position.Remove(treat)
		s.statConsumed.Add(1)

		w.PushEvent(event.EventTreatConsumed, &event.TreatConsumedPayload{
			Treat: treat,
			Eater: eater,
		})
	}
}
