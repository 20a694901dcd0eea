package audio

import "testing"

func TestSoundManager_UninitializedIsNoop(t *testing.T) {
	sm := NewSoundManager()
	sm.PlayChime(4)
	sm.Cleanup()
	if sm.Played() != 0 {
		t.Errorf("Uninitialized manager queued %d chimes", sm.Played())
	}
}

func TestSoundManager_Muted(t *testing.T) {
	sm := NewSoundManager()
	sm.SetMuted(true)
	if !sm.Muted() {
		t.Fatal("Expected muted")
	}
	sm.PlayChime(2)
	if sm.Played() != 0 {
		t.Errorf("Muted manager queued %d chimes", sm.Played())
	}
}
