package input

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Collector latches key presses between frames into a Snapshot
// Terminals report presses, not releases, so a press counts as held for exactly one frame
type Collector struct {
	mu      sync.Mutex
	keyMap  *KeyMap
	pending Snapshot
}

// NewCollector creates a Collector using km, or DefaultKeyMap when km is nil
func NewCollector(km *KeyMap) *Collector {
	if km == nil {
		km = DefaultKeyMap()
	}
	return &Collector{keyMap: km}
}

// HandleEvent records a terminal event, returns false if the event is not a bound key
func (c *Collector) HandleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	a := c.keyMap.Lookup(key)
	if a == ActionNone {
		return false
	}

	c.mu.Lock()
	c.pending.Set(a)
	c.mu.Unlock()
	return true
}

// Snapshot returns controls seen since the previous call and clears them
func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.pending
	c.pending = Snapshot{}
	return s
}
