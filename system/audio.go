package system

import (
	"github.com/lixenwraith/gridsnake/event"
)

// Chimer plays the growth cue
type Chimer interface {
	PlayChime(length int)
}

// AudioSystem plays a chime for every added segment
type AudioSystem struct {
	chimer Chimer
}

// NewAudioSystem creates an audio handler; a nil chimer makes it a no-op
func NewAudioSystem(chimer Chimer) *AudioSystem {
	return &AudioSystem{chimer: chimer}
}

func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSegmentAdded}
}

func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	if s.chimer == nil {
		return
	}
	if payload, ok := ev.Payload.(*event.SegmentAddedPayload); ok {
		s.chimer.PlayChime(payload.Length)
	}
}
