package system

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
)

// Chain invariant violations
var (
	ErrNoTail        = errors.New("chain has no tail segment")
	ErrMultipleTails = errors.New("chain has more than one tail segment")
	ErrTailMismatch  = errors.New("tail marker does not match the unlinked segment")
	ErrNoHead        = errors.New("chain has no head segment")
	ErrMultipleHeads = errors.New("chain has more than one head segment")
	ErrChainCycle    = errors.New("chain contains a cycle")
	ErrChainBroken   = errors.New("chain link is dangling or shared")
	ErrHeadMismatch  = errors.New("chain traversal did not end at the head")
)

// Topology is a validated snapshot of the chain order
type Topology struct {
	Tail core.Entity
	Head core.Entity

	// Order lists every segment from tail to head
	Order []core.Entity
}

// Len returns the chain length
func (t *Topology) Len() int {
	return len(t.Order)
}

// WalkChain validates the chain and returns its tail-to-head order
// The head-ward map is rebuilt from Segment.Link on every call
func WalkChain(w *engine.World) (*Topology, error) {
	cs := &w.Component

	segments := cs.Segment.All()
	sort.Slice(segments, func(i, j int) bool { return segments[i] < segments[j] })

	headward := make(map[core.Entity]core.Entity, len(segments))
	var tails []core.Entity
	for _, e := range segments {
		seg, _ := cs.Segment.Get(e)
		if seg.Link == 0 {
			tails = append(tails, e)
			continue
		}
		if !cs.Segment.Has(seg.Link) {
			return nil, fmt.Errorf("segment %d links to non-segment %d: %w", e, seg.Link, ErrChainBroken)
		}
		if owner, dup := headward[seg.Link]; dup {
			return nil, fmt.Errorf("segments %d and %d both link to %d: %w", owner, e, seg.Link, ErrChainBroken)
		}
		headward[seg.Link] = e
	}

	switch {
	case len(tails) == 0 && len(segments) > 0:
		return nil, fmt.Errorf("%d segments: %w: %w", len(segments), ErrNoTail, ErrChainCycle)
	case len(tails) == 0:
		return nil, ErrNoTail
	case len(tails) > 1:
		return nil, fmt.Errorf("tails %v: %w", tails, ErrMultipleTails)
	}
	tail := tails[0]
	if cs.Tail.Count() != 1 || !cs.Tail.Has(tail) {
		return nil, fmt.Errorf("unlinked segment %d, tail markers %v: %w", tail, cs.Tail.All(), ErrTailMismatch)
	}

	heads := cs.Head.All()
	switch len(heads) {
	case 0:
		return nil, ErrNoHead
	case 1:
	default:
		return nil, fmt.Errorf("heads %v: %w", heads, ErrMultipleHeads)
	}

	order := make([]core.Entity, 0, len(segments))
	visited := make(map[core.Entity]bool, len(segments))
	current := tail
	for {
		visited[current] = true
		order = append(order, current)
		next, ok := headward[current]
		if !ok {
			break
		}
		if visited[next] {
			return nil, fmt.Errorf("segment %d revisited: %w", next, ErrChainCycle)
		}
		current = next
	}

	// Unreached segments can only link among themselves, so they close a loop
	if len(order) != len(segments) {
		return nil, fmt.Errorf("%d of %d segments detached from tail: %w",
			len(segments)-len(order), len(segments), ErrChainCycle)
	}
	if current != heads[0] {
		return nil, fmt.Errorf("traversal ended at %d, head is %d: %w", current, heads[0], ErrHeadMismatch)
	}

	return &Topology{Tail: tail, Head: current, Order: order}, nil
}
