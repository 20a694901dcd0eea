package engine

import (
	"github.com/lixenwraith/gridsnake/event"
	"github.com/lixenwraith/gridsnake/parameter"
)

// EventHandler processes routed game events
type EventHandler interface {
	// HandleEvent is called synchronously on the simulation goroutine during dispatch
	HandleEvent(ev event.GameEvent)

	// EventTypes returns the event types the handler registers for
	EventTypes() []event.EventType
}

// EventRouter drains the event queue and hands each event to its handlers
// It also runs as a System so dispatch happens at a fixed point in the frame
//
//   - Handlers for one event type are invoked in registration order
//   - Events pushed by handlers are dispatched in the same frame, bounded by
//     parameter.EventLoopIterations passes
type EventRouter struct {
	handlers map[event.EventType][]EventHandler
	queue    *event.EventQueue
	priority int
}

// NewEventRouter creates a router attached to the given queue
func NewEventRouter(queue *event.EventQueue) *EventRouter {
	return &EventRouter{
		handlers: make(map[event.EventType][]EventHandler),
		queue:    queue,
		priority: parameter.PriorityDispatch,
	}
}

// Register adds a handler for each of its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes pending events in FIFO order until the queue is empty
// Returns the number of events dispatched
func (r *EventRouter) DispatchAll() int {
	dispatched := 0
	for i := 0; i < parameter.EventLoopIterations; i++ {
		events := r.queue.Consume()
		if len(events) == 0 {
			break
		}
		for _, ev := range events {
			for _, h := range r.handlers[ev.Type] {
				h.HandleEvent(ev)
			}
		}
		dispatched += len(events)
	}
	return dispatched
}

// HandlerCount returns the number of handlers registered for t
func (r *EventRouter) HandlerCount(t event.EventType) int {
	return len(r.handlers[t])
}

func (r *EventRouter) Update() {
	r.DispatchAll()
}

func (r *EventRouter) Priority() int {
	return r.priority
}
