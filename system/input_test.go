package system

import (
	"testing"

	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/input"
)

func TestResolveDirection(t *testing.T) {
	var (
		left  = core.Point{X: 1}
		right = core.Point{X: -1}
		up    = core.Point{Y: 1}
		down  = core.Point{Y: -1}
		none  = core.Point{}
	)

	tests := []struct {
		name    string
		snap    input.Snapshot
		moved   core.Point
		current core.Point
		want    core.Point
	}{
		{"no keys keeps current", input.Snapshot{}, left, left, left},
		{"reversal rejected", input.Snapshot{Right: true}, left, left, left},
		{"perpendicular accepted", input.Snapshot{Up: true}, left, left, up},
		{"same direction accepted", input.Snapshot{Left: true}, left, up, left},
		{"stationary accepts any", input.Snapshot{Right: true}, none, left, right},
		{"last passing wins", input.Snapshot{Left: true, Up: true}, left, left, up},
		{"rejected last falls back to earlier", input.Snapshot{Up: true, Down: true}, up, left, up},
		{"priority order left right", input.Snapshot{Left: true, Right: true}, none, none, right},
		{"all rejected keeps current", input.Snapshot{Down: true}, up, right, right},
		{"down from zero", input.Snapshot{Down: true}, none, none, down},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveDirection(tt.snap, tt.moved, tt.current); got != tt.want {
				t.Errorf("ResolveDirection(%+v, %v, %v) = %v, want %v", tt.snap, tt.moved, tt.current, got, tt.want)
			}
		})
	}
}

func TestInputSystem_AntiReversal(t *testing.T) {
	ctx, inst := newTestGame(t, 0, Options{InitialDirection: core.Point{X: 1}})
	w := ctx.World

	step(ctx, tick, noInput) // Head now moving (1,0)

	step(ctx, 1, input.Snapshot{Right: true})
	if dir, _ := w.Component.Direction.Get(inst.Head); dir.Delta != (core.Point{X: 1}) {
		t.Errorf("Reversal (-1,0) accepted: %v", dir.Delta)
	}

	step(ctx, 1, input.Snapshot{Up: true})
	if dir, _ := w.Component.Direction.Get(inst.Head); dir.Delta != (core.Point{Y: 1}) {
		t.Errorf("Perpendicular (0,1) rejected: %v", dir.Delta)
	}

	// Last step was still (1,0), so right remains a reversal until the next tick
	step(ctx, 1, input.Snapshot{Right: true})
	if dir, _ := w.Component.Direction.Get(inst.Head); dir.Delta != (core.Point{Y: 1}) {
		t.Errorf("Reversal of last step accepted: %v", dir.Delta)
	}

	step(ctx, tick, noInput)
	if pos := positionOf(t, w, inst.Head); pos.Position != (core.Point{X: 1, Y: 1}) {
		t.Errorf("Head at %v, want (1,1)", pos.Position)
	}
}
