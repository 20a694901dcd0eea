package system

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/parameter"
)

// ChainSystem advances the chain by one cell on every fired tick
type ChainSystem struct {
	world *engine.World

	statSteps   *atomic.Int64
	statSkipped *atomic.Int64
}

func NewChainSystem(world *engine.World) engine.System {
	return &ChainSystem{
		world:       world,
		statSteps:   world.Resource.Status.Ints.Get("chain.steps"),
		statSkipped: world.Resource.Status.Ints.Get("chain.skipped"),
	}
}

func (s *ChainSystem) Priority() int {
	return parameter.PriorityChain
}

// Update panics on a broken chain, the simulation cannot continue without a valid topology
func (s *ChainSystem) Update() {
	if !s.world.Resource.Tick.Fired {
		return
	}

	topo, err := WalkChain(s.world)
	if err != nil {
		panic(fmt.Errorf("chain step at frame %d: %w", s.world.FrameNumber(), err))
	}

	if !Step(s.world, topo) {
		s.statSkipped.Add(1)
		return
	}
	s.statSteps.Add(1)
}

// Step moves every segment into its head-ward neighbor's cell, tail first, then
// moves each directed segment by its direction
// A head without direction skips the step entirely; returns whether it ran
func Step(w *engine.World, topo *Topology) bool {
	cs := &w.Component

	headDir, _ := cs.Direction.Get(topo.Head)
	if headDir.Delta.IsZero() {
		return false
	}

	// Tail to head, so each neighbor is read before it is overwritten
	for i := 0; i < len(topo.Order)-1; i++ {
		cur, neighbor := topo.Order[i], topo.Order[i+1]
		curPos, _ := cs.Position.Get(cur)
		neighborPos, _ := cs.Position.Get(neighbor)

		curPos.Prev = curPos.Position
		curPos.Position = neighborPos.Position
		cs.Position.Set(cur, curPos)
	}

	for _, e := range topo.Order {
		dir, ok := cs.Direction.Get(e)
		if !ok || dir.Delta.IsZero() {
			continue
		}
		pos, _ := cs.Position.Get(e)
		pos.Prev = pos.Position
		pos.Position = pos.Position.Add(dir.Delta)
		cs.Position.Set(e, pos)
	}
	return true
}
