package system

import (
	"testing"

	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/input"
)

func TestGrowth_TwoNotificationsOneFrame(t *testing.T) {
	ctx, inst := newTestGame(t, 0, Options{SeedLength: 2, InitialDirection: core.Point{X: 1}})
	w := ctx.World

	step(ctx, tick, noInput)
	topo, _ := WalkChain(w)
	oldTail := topo.Tail
	oldTailPrev := positionOf(t, w, oldTail).Prev

	t1 := w.CreateEntity()
	t2 := w.CreateEntity()
	ctx.PushEvent(eventTreatConsumed(t1))
	ctx.PushEvent(eventTreatConsumed(t2))
	step(ctx, 1, noInput)

	topo, err := WalkChain(w)
	if err != nil {
		t.Fatalf("WalkChain after growth: %v", err)
	}
	if topo.Len() != 4 {
		t.Fatalf("Expected length 4, got %d", topo.Len())
	}
	if linkOf(t, w, oldTail) != t1 || linkOf(t, w, t1) != t2 || topo.Tail != t2 {
		t.Errorf("Growth not chained: %v", topo.Order)
	}
	if p := positionOf(t, w, t1).Position; p != oldTailPrev {
		t.Errorf("First new segment at %v, want %v", p, oldTailPrev)
	}
	// Second segment appends at the first new tail's prev, which equals its position
	if p := positionOf(t, w, t2).Position; p != oldTailPrev {
		t.Errorf("Second new segment at %v, want %v", p, oldTailPrev)
	}
	if topo.Head != inst.Head {
		t.Errorf("Head changed during growth")
	}
	if got := w.Resource.Status.Ints.Get("snake.length").Load(); got != 4 {
		t.Errorf("snake.length = %d, want 4", got)
	}
}

func TestGrowth_IgnoresInvalidNotifications(t *testing.T) {
	ctx, inst := newTestGame(t, 0, Options{InitialDirection: core.Point{X: 1}})
	w := ctx.World

	for _, e := range []core.Entity{0, 9999, inst.Head} {
		if inst.Growth.Grow(e) {
			t.Errorf("Grow(%d) should be ignored", e)
		}
	}
	if w.Component.Segment.Count() != 1 {
		t.Errorf("Length changed by ignored notifications: %d", w.Component.Segment.Count())
	}
	if got := w.Resource.Status.Ints.Get("growth.ignored").Load(); got != 3 {
		t.Errorf("growth.ignored = %d, want 3", got)
	}

	// Duplicate notification for the same treat grows once
	treat := w.CreateEntity()
	ctx.PushEvent(eventTreatConsumed(treat))
	ctx.PushEvent(eventTreatConsumed(treat))
	step(ctx, 1, noInput)
	if w.Component.Segment.Count() != 2 {
		t.Errorf("Expected length 2 after duplicate notification, got %d", w.Component.Segment.Count())
	}
}

func TestGrowth_MonotonicAndSimplePath(t *testing.T) {
	ctx, _ := newTestGame(t, 0, Options{InitialDirection: core.Point{X: 1}})
	w := ctx.World

	turns := []input.Snapshot{
		{Up: true}, {}, {Right: true}, {}, {Down: true}, {Left: true}, {}, {Up: true},
	}

	length := 1
	for i := 0; i < 24; i++ {
		step(ctx, tick, turns[i%len(turns)])

		if i%3 == 0 {
			treat := w.CreateEntity()
			ctx.PushEvent(eventTreatConsumed(treat))
			step(ctx, 1, noInput)

			topo, _ := WalkChain(w)
			tailPos := positionOf(t, w, treat)
			if topo.Tail != treat || tailPos.Position != tailPos.Prev {
				t.Fatalf("iteration %d: new tail %d not placed as tail: %+v", i, treat, tailPos)
			}
			length++
		}

		topo, err := WalkChain(w)
		if err != nil {
			t.Fatalf("iteration %d: %v", i, err)
		}
		if topo.Len() != length {
			t.Fatalf("iteration %d: length %d, want %d", i, topo.Len(), length)
		}
	}
}

func TestGrowth_NewSegmentAtOldTailPrev(t *testing.T) {
	ctx, inst := newTestGame(t, 0, Options{SeedLength: 3, InitialDirection: core.Point{Y: 1}})
	w := ctx.World

	step(ctx, tick, noInput)
	step(ctx, tick, input.Snapshot{Left: true})

	topo, _ := WalkChain(w)
	wantCell := positionOf(t, w, topo.Tail).Prev

	treat := w.CreateEntity()
	if !inst.Growth.Grow(treat) {
		t.Fatal("growth rejected")
	}
	if p := positionOf(t, w, treat).Position; p != wantCell {
		t.Errorf("New segment at %v, want old tail prev %v", p, wantCell)
	}
}
