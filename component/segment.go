package component

import "github.com/lixenwraith/gridsnake/core"

// PositionComponent holds the discrete grid cell of an entity
// Prev is the cell held before the most recent discrete step; equal to Position until the entity first moves
type PositionComponent struct {
	Position core.Point
	Prev     core.Point
}

// Moved returns the delta of the most recent step, zero if the entity has not moved
func (p PositionComponent) Moved() core.Point {
	return p.Position.Sub(p.Prev)
}

// DirectionComponent is the desired step for the next tick, zero means no intent
// Only the head carries one
type DirectionComponent struct {
	Delta core.Point
}

// SegmentComponent marks a chain member
// Link names the neighbor one step tail-ward; 0 marks the tail
type SegmentComponent struct {
	Link core.Entity
}

// HeadComponent marks the unique segment that receives input
type HeadComponent struct{}

// TailComponent marks the unique segment the growth handler extends
type TailComponent struct{}
