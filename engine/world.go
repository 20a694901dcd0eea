package engine

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/event"
)

// System is a unit of per-frame simulation logic
type System interface {
	Update()
	Priority() int // Lower values run first
}

// World contains all entities, their components and the resources systems share
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Component ComponentStore
	Resource  *Resource

	allStores []AnyStore

	// Direct pointers for PushEvent hot path
	eventQueue  *event.EventQueue
	frameSource *atomic.Int64

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a world with empty stores and default resources
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Component:    newComponentStore(),
		Resource:     NewResource(),
		systems:      make([]System, 0),
	}
	w.allStores = w.Component.all()
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// Exists reports whether e was ever allocated by this world
func (w *World) Exists(e core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return e != 0 && e < w.nextEntityID
}

// DestroyEntity removes every component of e
func (w *World) DestroyEntity(e core.Entity) {
	for _, store := range w.allStores {
		store.Remove(e)
	}
}

// Clear removes all entities and components; IDs restart at 1
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	for _, store := range w.allStores {
		store.Clear()
	}
}

// AddSystem adds a system and keeps the list sorted by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Stable insertion sort, small N, equal priorities keep registration order
	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i-1].Priority() <= w.systems[i].Priority() {
			break
		}
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}
}

// Systems returns a copy of the registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes fn while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Update runs all systems sequentially under the update lock
func (w *World) Update() {
	w.RunSafe(w.UpdateLocked)
}

// UpdateLocked runs all systems assuming the caller holds the update lock
func (w *World) UpdateLocked() {
	for _, system := range w.Systems() {
		system.Update()
	}
}

// FrameNumber returns the current frame index, 0 before wiring
func (w *World) FrameNumber() int64 {
	if w.frameSource == nil {
		return 0
	}
	return w.frameSource.Load()
}

// SetEventMetadata wires the queue and frame counter used by PushEvent
// Called once during GameContext initialization
func (w *World) SetEventMetadata(q *event.EventQueue, f *atomic.Int64) {
	w.eventQueue = q
	w.frameSource = f
	w.Resource.Event = &EventQueueResource{Queue: q}
}

// PushEvent emits a game event stamped with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	if w.eventQueue == nil {
		return // Not yet initialized
	}
	w.eventQueue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.FrameNumber(),
	})
}
