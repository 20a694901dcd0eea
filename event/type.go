package event

// EventType represents the type of game event
type EventType int

const (
	// EventTreatConsumed signals a segment reached a treat's cell on a tick boundary
	// Trigger: TreatSystem, or any external treat collaborator
	// Consumer: GrowthSystem | Payload: *TreatConsumedPayload
	EventTreatConsumed EventType = iota

	// EventSegmentAdded signals the chain grew by one tail segment
	// Trigger: GrowthSystem
	// Consumer: AudioSystem | Payload: *SegmentAddedPayload
	EventSegmentAdded

	// EventTreatSpawned signals a new treat appeared
	// Trigger: SpawnSystem
	// Consumer: diagnostics | Payload: *TreatSpawnedPayload
	EventTreatSpawned
)

// String returns the name of the event type for debugging
func (e EventType) String() string {
	switch e {
	case EventTreatConsumed:
		return "TreatConsumed"
	case EventSegmentAdded:
		return "SegmentAdded"
	case EventTreatSpawned:
		return "TreatSpawned"
	default:
		return "Unknown"
	}
}

// GameEvent is a single notification with the frame it was raised on
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
