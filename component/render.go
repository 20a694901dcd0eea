package component

import "github.com/lixenwraith/gridsnake/core"

// RenderComponent is the continuously interpolated planar position of a segment
// Planar.X follows grid X, Planar.Y follows grid Y (scene Z)
type RenderComponent struct {
	Planar core.Vec2
}
