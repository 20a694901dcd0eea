package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/gridsnake/component"
	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/event"
	"github.com/lixenwraith/gridsnake/input"
)

const tick = 250 * time.Millisecond

var noInput input.Snapshot

func eventTreatConsumed(treat core.Entity) (event.EventType, any) {
	return event.EventTreatConsumed, &event.TreatConsumedPayload{Treat: treat}
}

// newTestGame installs a full simulation with the given treat count and a mock clock
func newTestGame(t *testing.T, treats int, opts Options) (*engine.GameContext, *Installed) {
	t.Helper()
	eo := engine.DefaultOptions()
	eo.TreatCount = treats
	eo.TimeProvider = engine.NewMockTimeProvider(engine.TestEpoch)

	ctx, err := engine.NewGameContext(eo)
	if err != nil {
		t.Fatalf("NewGameContext: %v", err)
	}
	if opts.SeedLength == 0 {
		opts.SeedLength = 1
	}
	inst, err := Install(ctx, opts)
	if err != nil {
		t.Fatalf("Install: %v", err)
	}
	return ctx, inst
}

func step(ctx *engine.GameContext, dt time.Duration, snap input.Snapshot) {
	ctx.Step(dt, snap)
}

func positionOf(t *testing.T, w *engine.World, e core.Entity) component.PositionComponent {
	t.Helper()
	pos, ok := w.Component.Position.Get(e)
	if !ok {
		t.Fatalf("entity %d has no position", e)
	}
	return pos
}

func linkOf(t *testing.T, w *engine.World, e core.Entity) core.Entity {
	t.Helper()
	seg, ok := w.Component.Segment.Get(e)
	if !ok {
		t.Fatalf("entity %d is not a segment", e)
	}
	return seg.Link
}

// buildChain creates segments head first at the given cells without markers
func buildChain(w *engine.World, cells ...core.Point) []core.Entity {
	cs := &w.Component
	ids := make([]core.Entity, len(cells))
	for i := range cells {
		ids[i] = w.CreateEntity()
	}
	for i, e := range ids {
		var link core.Entity
		if i+1 < len(ids) {
			link = ids[i+1]
		}
		cs.Segment.Set(e, component.SegmentComponent{Link: link})
		cs.Position.Set(e, component.PositionComponent{Position: cells[i], Prev: cells[i]})
	}
	return ids
}

func mark(w *engine.World, head, tail core.Entity) {
	w.Component.Head.Set(head, component.HeadComponent{})
	w.Component.Tail.Set(tail, component.TailComponent{})
}
