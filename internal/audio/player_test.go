package audio

import "testing"

func readyPlayer(cues bool) *Player {
	p := NewPlayer(Options{Volume: 1, AudioCues: cues})
	p.initialized = true
	return p
}

func TestPlayerDropsSoundsBeforeInit(t *testing.T) {
	p := NewPlayer(Options{Volume: 1})
	p.OnJumpStart()
	p.OnCrash()
	if p.Playing() != 0 {
		t.Errorf("Playing() = %d, expected 0 before Init", p.Playing())
	}
}

func TestPlayerEvents(t *testing.T) {
	p := readyPlayer(false)
	p.OnJumpStart()
	p.OnCrash()
	p.OnScoreAchievement()
	if p.Playing() != 3 {
		t.Errorf("Playing() = %d, expected 3", p.Playing())
	}
}

func TestPlayerMuted(t *testing.T) {
	p := NewPlayer(Options{Volume: 0})
	p.initialized = true
	p.OnJumpStart()
	if p.Playing() != 0 {
		t.Errorf("Playing() = %d, expected 0 when muted", p.Playing())
	}
}

func TestCuesNeedCueMode(t *testing.T) {
	p := readyPlayer(false)
	p.Background()
	p.LoopFootsteps()
	p.JumpCue()
	if p.Playing() != 0 || p.Footsteps() {
		t.Errorf("Playing() = %d, Footsteps() = %v without cue mode", p.Playing(), p.Footsteps())
	}
}

func TestFootstepsLifecycle(t *testing.T) {
	p := readyPlayer(true)

	p.Background()
	if !p.Footsteps() {
		t.Fatalf("Background() did not start the footsteps")
	}
	if p.Playing() != 2 {
		t.Errorf("Playing() = %d, expected background notes and footsteps", p.Playing())
	}

	p.LoopFootsteps()
	if p.Playing() != 2 {
		t.Errorf("Playing() = %d, footsteps started twice", p.Playing())
	}

	p.CancelFootsteps()
	if p.Footsteps() {
		t.Errorf("footsteps still playing after cancel")
	}
	if p.Playing() != 3 {
		t.Errorf("Playing() = %d, expected the lift notes added", p.Playing())
	}

	p.StopAll()
	if p.Playing() != 3 {
		t.Errorf("StopAll() without footsteps played %d streamers", p.Playing())
	}
}
