package system

import (
	"testing"

	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/parameter"
)

func TestSeedChain_Layout(t *testing.T) {
	tests := []struct {
		name  string
		dir   core.Point
		cells []core.Point // head first
	}{
		{"up", core.Point{Y: 1}, []core.Point{{}, {Y: -1}, {Y: -2}}},
		{"right", core.Point{X: -1}, []core.Point{{}, {X: 1}, {X: 2}}},
		{"stationary", core.Point{}, []core.Point{{}, {X: -1}, {X: -2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := engine.NewWorld()
			head, err := SeedChain(w, len(tt.cells), tt.dir, core.Point{})
			if err != nil {
				t.Fatalf("SeedChain: %v", err)
			}
			topo, err := WalkChain(w)
			if err != nil {
				t.Fatalf("WalkChain: %v", err)
			}
			if topo.Head != head {
				t.Errorf("Head %d, topology head %d", head, topo.Head)
			}
			for i := range tt.cells {
				e := topo.Order[len(topo.Order)-1-i]
				pos := positionOf(t, w, e)
				if pos.Position != tt.cells[i] || pos.Prev != pos.Position {
					t.Errorf("segment %d: %+v, want %v with prev equal", i, pos, tt.cells[i])
				}
				dir, hasDir := w.Component.Direction.Get(e)
				if e == head && (!hasDir || dir.Delta != tt.dir) {
					t.Errorf("Head direction %v, want %v", dir.Delta, tt.dir)
				}
				if e != head && hasDir {
					t.Errorf("Body segment %d carries a direction", e)
				}
			}
		})
	}
}

func TestSeedChain_Errors(t *testing.T) {
	w := engine.NewWorld()
	if _, err := SeedChain(w, 0, core.Point{X: 1}, core.Point{}); err == nil {
		t.Error("Expected error for zero length")
	}
	if _, err := SeedChain(w, parameter.MaxSeedLength+1, core.Point{X: 1}, core.Point{}); err == nil {
		t.Error("Expected error for excessive length")
	}
	if _, err := SeedChain(w, 1, core.Point{X: 1, Y: 1}, core.Point{}); err == nil {
		t.Error("Expected error for diagonal direction")
	}
	if _, err := SeedChain(w, 1, core.Point{X: 1}, core.Point{}); err != nil {
		t.Fatalf("SeedChain: %v", err)
	}
	if _, err := SeedChain(w, 1, core.Point{X: 1}, core.Point{}); err == nil {
		t.Error("Expected error when seeding twice")
	}
}
