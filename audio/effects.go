package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/gridsnake/parameter"
)

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/sustain/release gain curve over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; math.Log2(0) is -Inf, so zero is mapped to silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// ChimeFrequency returns the chime pitch for a chain of the given length
// One semitone per segment above the seed, capped at ChimeMaxSemitones
func ChimeFrequency(length int) float64 {
	steps := min(max(length-1, 0), parameter.ChimeMaxSemitones)
	return parameter.ChimeBaseFrequency * math.Pow(2, float64(steps)/12)
}

// NewChime builds the growth cue: a short enveloped sine at ChimeFrequency(length)
func NewChime(length int, rate beep.SampleRate) (beep.Streamer, error) {
	tone, err := generators.SineTone(rate, ChimeFrequency(length))
	if err != nil {
		return nil, fmt.Errorf("chime tone: %w", err)
	}
	clipped := beep.Take(rate.N(parameter.ChimeDuration), tone)
	shaped := NewEnvelope(clipped, parameter.ChimeDuration, parameter.ChimeAttack, parameter.ChimeRelease, rate)
	return newVolume(shaped, parameter.ChimeVolume), nil
}
