package system

import (
	"log"
	"sync/atomic"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/gridsnake/component"
	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/event"
	"github.com/lixenwraith/gridsnake/parameter"
)

// SpawnSystem keeps the configured number of treats on the plane
type SpawnSystem struct {
	world *engine.World
	rng   *rand.Rand

	// Preset cells used before random placement, consumed in order
	presets []core.Point

	gridFull bool

	statSpawned *atomic.Int64
	statActive  *atomic.Int64
}

// NewSpawnSystem creates a spawner with a deterministic RNG seed
func NewSpawnSystem(world *engine.World, seed uint64, presets []core.Point) *SpawnSystem {
	reg := world.Resource.Status
	return &SpawnSystem{
		world:       world,
		rng:         rand.New(rand.NewSource(seed)),
		presets:     append([]core.Point(nil), presets...),
		statSpawned: reg.Ints.Get("treat.spawned"),
		statActive:  reg.Ints.Get("treat.active"),
	}
}

func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

func (s *SpawnSystem) Update() {
	s.Fill()
}

// Fill spawns treats until the configured count is alive or no free cell remains
// Returns the number spawned
func (s *SpawnSystem) Fill() int {
	w := s.world
	cs := &w.Component
	want := w.Resource.Grid.TreatCount

	spawned := 0
	for cs.Treat.Count() < want {
		cell, ok := s.nextCell()
		if !ok {
			if !s.gridFull {
				log.Printf("spawn: no free cell for treat, %d of %d alive", cs.Treat.Count(), want)
				s.gridFull = true
			}
			break
		}
		s.gridFull = false

		e := w.CreateEntity()
		cs.Position.Set(e, component.PositionComponent{Position: cell, Prev: cell})
		cs.Treat.Set(e, component.TreatComponent{SpawnFrame: w.FrameNumber()})
		s.statSpawned.Add(1)
		spawned++

		w.PushEvent(event.EventTreatSpawned, &event.TreatSpawnedPayload{Treat: e, Position: cell})
	}
	s.statActive.Store(int64(cs.Treat.Count()))
	return spawned
}

func (s *SpawnSystem) nextCell() (core.Point, bool) {
	occupied := s.occupied()
	grid := s.world.Resource.Grid

	for len(s.presets) > 0 {
		cell := s.presets[0]
		s.presets = s.presets[1:]
		if grid.Contains(cell.X, cell.Y) && !occupied[cell] {
			return cell, true
		}
	}

	free := make([]core.Point, 0, 64)
	for y := -grid.HalfSize; y <= grid.HalfSize; y++ {
		for x := -grid.HalfSize; x <= grid.HalfSize; x++ {
			p := core.Point{X: x, Y: y}
			if !occupied[p] {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return core.Point{}, false
	}
	return free[s.rng.Intn(len(free))], true
}

func (s *SpawnSystem) occupied() map[core.Point]bool {
	cs := &s.world.Component
	out := make(map[core.Point]bool, cs.Position.Count())
	for _, e := range cs.Position.All() {
		pos, _ := cs.Position.Get(e)
		out[pos.Position] = true
	}
	return out
}
