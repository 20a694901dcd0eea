package event

import (
	"sync/atomic"

	"github.com/lixenwraith/gridsnake/parameter"
)

// EventQueue is a bounded lock-free MPSC ring buffer
// Thread-Safety:
//   - Push: lock-free CAS, any goroutine
//   - Consume: single consumer (simulation loop)
//   - Published flags keep the consumer from reading a slot mid-write
//
// Overflow: oldest unread events are overwritten
// Delivery: Consume clears what it returns, so each event is observed at most once
type EventQueue struct {
	events    [parameter.EventQueueSize]GameEvent
	published [parameter.EventQueueSize]atomic.Bool
	head      atomic.Uint64 // Read index
	tail      atomic.Uint64 // Write index
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, overwriting the oldest one when full
func (eq *EventQueue) Push(ev GameEvent) {
	for {
		currentTail := eq.tail.Load()
		nextTail := currentTail + 1

		if eq.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & parameter.EventBufferMask

			eq.events[idx] = ev
			eq.published[idx].Store(true) // MUST be after write

			currentHead := eq.head.Load()
			if nextTail-currentHead > parameter.EventQueueSize {
				eq.head.CompareAndSwap(currentHead, nextTail-parameter.EventQueueSize)
			}
			return
		}
	}
}

// Consume returns pending events in FIFO order and marks them read
func (eq *EventQueue) Consume() []GameEvent {
	for {
		currentHead := eq.head.Load()
		currentTail := eq.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		available := currentTail - currentHead
		if available > parameter.EventQueueSize {
			available = parameter.EventQueueSize
			currentHead = currentTail - parameter.EventQueueSize
		}

		result := make([]GameEvent, 0, available)
		for i := uint64(0); i < available; i++ {
			idx := (currentHead + i) & parameter.EventBufferMask
			if !eq.published[idx].Load() {
				break // Writer incomplete, pick up next pass
			}
			result = append(result, eq.events[idx])
			eq.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(result))
		if eq.head.CompareAndSwap(currentHead, newHead) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}

// Peek returns pending events without consuming them
func (eq *EventQueue) Peek() []GameEvent {
	currentHead := eq.head.Load()
	currentTail := eq.tail.Load()

	available := currentTail - currentHead
	if available == 0 {
		return nil
	}
	if available > parameter.EventQueueSize {
		available = parameter.EventQueueSize
		currentHead = currentTail - parameter.EventQueueSize
	}

	result := make([]GameEvent, 0, available)
	for i := uint64(0); i < available; i++ {
		idx := (currentHead + i) & parameter.EventBufferMask
		if !eq.published[idx].Load() {
			break
		}
		result = append(result, eq.events[idx])
	}
	return result
}

// Len returns approximate pending event count
func (eq *EventQueue) Len() int {
	head := eq.head.Load()
	tail := eq.tail.Load()
	if tail <= head {
		return 0
	}
	diff := int(tail - head)
	if diff > parameter.EventQueueSize {
		return parameter.EventQueueSize
	}
	return diff
}
