package event

import "github.com/lixenwraith/gridsnake/core"

// TreatConsumedPayload names the consumed treat, whose identity becomes the new segment's,
// and the segment that ate it (diagnostics only)
type TreatConsumedPayload struct {
	Treat core.Entity
	Eater core.Entity
}

// SegmentAddedPayload describes one growth step
type SegmentAddedPayload struct {
	Segment      core.Entity
	PreviousTail core.Entity
	Length       int
}

// TreatSpawnedPayload describes a spawned treat
type TreatSpawnedPayload struct {
	Treat    core.Entity
	Position core.Point
}
