package audio

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/gridsnake/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager owns the speaker and mixes growth chimes into it
// An uninitialized or muted manager accepts every call as a no-op
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool

	played atomic.Int64
}

// NewSoundManager creates a manager; call Initialize to open the device
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferWindow)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer
// beep has no speaker close that allows re-init, clearing streamers is enough
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted toggles output without releasing the device
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
}

func (sm *SoundManager) Muted() bool {
	return sm.muted.Load()
}

// Played returns the number of chimes queued to the mixer
func (sm *SoundManager) Played() int64 {
	return sm.played.Load()
}

// PlayChime queues the growth cue for a chain of the given length
func (sm *SoundManager) PlayChime(length int) {
	if sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	chime, err := NewChime(length, sampleRate)
	if err != nil {
		log.Printf("audio: %v", err)
		return
	}

	speaker.Lock()
	sm.mixer.Add(chime)
	speaker.Unlock()
	sm.played.Add(1)
}
