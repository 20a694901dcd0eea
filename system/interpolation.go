package system

import (
	"math"

	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/parameter"
)

// InterpolationSystem eases each segment's visual position toward its grid cell every frame
type InterpolationSystem struct {
	engine.SystemBase
}

func NewInterpolationSystem(world *engine.World) engine.System {
	return &InterpolationSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *InterpolationSystem) Priority() int {
	return parameter.PriorityInterpolation
}

func (s *InterpolationSystem) Update() {
	res := s.Resource
	alpha := LerpFactor(res.Tuning.LerpRate(), res.Time.DeltaSeconds())
	if alpha <= 0 {
		return
	}

	cs := s.Component
	for _, e := range s.World.Query().With(cs.Render).With(cs.Position).Execute() {
		pos, _ := cs.Position.Get(e)
		r, _ := cs.Render.Get(e)
		r.Planar = Approach(r.Planar, pos.Position.Vec2(), alpha)
		cs.Render.Set(e, r)
	}
}

// LerpFactor returns min(rate*dt, 1), never negative
func LerpFactor(rate, dtSeconds float64) float64 {
	alpha := rate * dtSeconds
	if alpha > 1 {
		return 1
	}
	if alpha < 0 || math.IsNaN(alpha) {
		return 0
	}
	return alpha
}

// Approach moves from toward target by fraction alpha
func Approach(from, target core.Vec2, alpha float64) core.Vec2 {
	if alpha >= 1 {
		return target
	}
	return core.Vec2{
		X: from.X + (target.X-from.X)*alpha,
		Y: from.Y + (target.Y-from.Y)*alpha,
	}
}

// RenderPosition returns the 3-D visual position of e
// X and Z carry the interpolated planar position, Y is the fixed render level
func RenderPosition(w *engine.World, e core.Entity) (core.Vec3, bool) {
	r, ok := w.Component.Render.Get(e)
	if !ok {
		return core.Vec3{}, false
	}
	return core.Vec3{X: r.Planar.X, Y: parameter.RenderLevel, Z: r.Planar.Y}, true
}
