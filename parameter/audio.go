package parameter

import "time"

// Audio output
const (
	AudioSampleRate   = 44100
	AudioBufferWindow = 100 * time.Millisecond
)

// Growth chime
const (
	ChimeDuration      = 90 * time.Millisecond
	ChimeAttack        = 5 * time.Millisecond
	ChimeRelease       = 60 * time.Millisecond
	ChimeBaseFrequency = 440.0
	ChimeMaxSemitones  = 24 // Pitch stops rising two octaves above base
	ChimeVolume        = 0.35
)
