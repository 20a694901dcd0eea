package engine

import (
	"github.com/lixenwraith/gridsnake/component"
)

// ComponentStore provides cached pointers to every typed component store
// Initialized once per world; pointers stay valid for the world's lifetime
type ComponentStore struct {
	// Grid
	Position  *Store[component.PositionComponent]
	Direction *Store[component.DirectionComponent]

	// Chain topology
	Segment *Store[component.SegmentComponent]
	Head    *Store[component.HeadComponent]
	Tail    *Store[component.TailComponent]

	// Presentation
	Render *Store[component.RenderComponent]

	// Items
	Treat *Store[component.TreatComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Position:  NewStore[component.PositionComponent](),
		Direction: NewStore[component.DirectionComponent](),
		Segment:   NewStore[component.SegmentComponent](),
		Head:      NewStore[component.HeadComponent](),
		Tail:      NewStore[component.TailComponent](),
		Render:    NewStore[component.RenderComponent](),
		Treat:     NewStore[component.TreatComponent](),
	}
}

// all lists every store for uniform lifecycle operations
func (cs *ComponentStore) all() []AnyStore {
	return []AnyStore{
		cs.Position,
		cs.Direction,
		cs.Segment,
		cs.Head,
		cs.Tail,
		cs.Render,
		cs.Treat,
	}
}
