package engine

import (
	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/parameter"
)

// Segment roles reported in snapshots
const (
	RoleHead = "head"
	RoleBody = "body"
	RoleTail = "tail"
)

// SegmentView is a read-only copy of one segment's state
type SegmentView struct {
	ID   core.Entity `json:"id"`
	X    int         `json:"x"`
	Y    int         `json:"y"`
	RX   float64     `json:"rx"`
	RZ   float64     `json:"rz"`
	Role string      `json:"role"`
}

// TreatView is a read-only copy of one treat
type TreatView struct {
	ID core.Entity `json:"id"`
	X  int         `json:"x"`
	Y  int         `json:"y"`
}

// Snapshot is a frame-consistent copy of the simulation for rendering and the debug stream
type Snapshot struct {
	Frame    int64         `json:"frame"`
	Tick     int64         `json:"tick"`
	TickMS   int64         `json:"tick_ms"`
	LerpRate float64       `json:"lerp_rate"`
	HalfSize int           `json:"half_size"`
	Length   int           `json:"length"`
	Segments []SegmentView `json:"segments"`
	Treats   []TreatView   `json:"treats"`
}

// Snapshot copies the current state under the update lock
func (ctx *GameContext) Snapshot() Snapshot {
	var snap Snapshot
	ctx.World.RunSafe(func() {
		snap = ctx.snapshotLocked()
	})
	return snap
}

func (ctx *GameContext) snapshotLocked() Snapshot {
	w := ctx.World
	cs := &w.Component
	res := w.Resource

	snap := Snapshot{
		Frame:    ctx.FrameNumber.Load(),
		Tick:     ctx.Scheduler.Ticks(),
		TickMS:   res.Tuning.TickInterval().Milliseconds(),
		LerpRate: res.Tuning.LerpRate(),
		HalfSize: res.Grid.HalfSize,
	}

	segments := w.Query().With(cs.Segment).With(cs.Position).Execute()
	snap.Length = len(segments)
	snap.Segments = make([]SegmentView, 0, len(segments))
	for _, e := range segments {
		pos, _ := cs.Position.Get(e)
		view := SegmentView{ID: e, X: pos.Position.X, Y: pos.Position.Y, Role: RoleBody}
		if r, ok := cs.Render.Get(e); ok {
			view.RX, view.RZ = r.Planar.X, r.Planar.Y
		} else {
			view.RX, view.RZ = float64(pos.Position.X), float64(pos.Position.Y)
		}
		switch {
		case cs.Head.Has(e):
			view.Role = RoleHead
		case cs.Tail.Has(e):
			view.Role = RoleTail
		}
		snap.Segments = append(snap.Segments, view)
	}

	treats := w.Query().With(cs.Treat).With(cs.Position).Execute()
	snap.Treats = make([]TreatView, 0, len(treats))
	for _, e := range treats {
		pos, _ := cs.Position.Get(e)
		snap.Treats = append(snap.Treats, TreatView{ID: e, X: pos.Position.X, Y: pos.Position.Y})
	}
	return snap
}

// RenderPositions returns the 3-D visual position of every segment
// Y is the fixed render level, X and Z carry the interpolated planar position
func (ctx *GameContext) RenderPositions() map[core.Entity]core.Vec3 {
	out := make(map[core.Entity]core.Vec3)
	ctx.World.RunSafe(func() {
		cs := &ctx.World.Component
		for _, e := range ctx.World.Query().With(cs.Segment).With(cs.Render).Execute() {
			r, _ := cs.Render.Get(e)
			out[e] = core.Vec3{X: r.Planar.X, Y: parameter.RenderLevel, Z: r.Planar.Y}
		}
	})
	return out
}
