// Package audio plays generated sound effects through gopxl/beep.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-runner/internal/runner"
)

const sampleRate = beep.SampleRate(48000)

var (
	_ runner.Audio    = (*Player)(nil)
	_ runner.CueAudio = (*Player)(nil)
)

// Options configures a Player.
type Options struct {
	Volume    float64 // 0..1
	AudioCues bool
	Logger    *log.Logger
}

// Player mixes every sound into one speaker stream. Until Init succeeds it
// drops sounds silently.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	cues        bool
	footsteps   *beep.Ctrl
	initialized bool
	logger      *log.Logger

	lock   func()
	unlock func()
}

// NewPlayer creates a silent player. Call Init to open the speaker.
func NewPlayer(opts Options) *Player {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Player{
		mixer:  &beep.Mixer{},
		rate:   sampleRate,
		volume: opts.Volume,
		cues:   opts.AudioCues,
		logger: opts.Logger,
		lock:   func() {},
		unlock: func() {},
	}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	p.lock, p.unlock = speaker.Lock, speaker.Unlock
	speaker.Play(p.mixer)
	p.initialized = true
	p.logger.Debug("speaker ready", "rate", int(p.rate))
	return nil
}

// Close stops every sound. The speaker itself stays open.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.lock()
	p.mixer.Clear()
	p.unlock()
	p.footsteps = nil
	speaker.Clear()
	p.initialized = false
}

// play adds s to the mixer. Callers hold p.mu.
func (p *Player) play(s beep.Streamer) {
	if !p.initialized || p.volume <= 0 {
		return
	}
	p.lock()
	p.mixer.Add(s)
	p.unlock()
}

func (p *Player) OnJumpStart() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.play(JumpSound(p.rate, p.volume))
}

func (p *Player) OnCrash() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.play(CrashSound(p.rate, p.volume))
}

func (p *Player) OnScoreAchievement() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.play(AchievementSound(p.rate, p.volume))
}

// Background plays the opening notes of a run and starts the footsteps.
func (p *Player) Background() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.cues {
		return
	}
	p.play(newVolume(NewPhrase(BackgroundNotes, 0, p.rate), p.volume))
	p.loopFootsteps()
}

func (p *Player) LoopFootsteps() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loopFootsteps()
}

func (p *Player) loopFootsteps() {
	if !p.cues || p.footsteps != nil || !p.initialized {
		return
	}
	p.footsteps = &beep.Ctrl{Streamer: newVolume(NewPhrase(FootstepNotes, footstepPeriod, p.rate), p.volume)}
	p.play(p.footsteps)
}

// CancelFootsteps stops the footsteps loop and plays the lift-off notes.
func (p *Player) CancelFootsteps() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cancelFootsteps()
}

func (p *Player) cancelFootsteps() {
	if !p.cues || p.footsteps == nil {
		return
	}
	// A Ctrl without a streamer drains, so the mixer drops it.
	p.lock()
	p.footsteps.Streamer = nil
	p.unlock()
	p.footsteps = nil
	p.play(newVolume(NewPhrase(LiftNotes, 0, p.rate), p.volume))
}

func (p *Player) JumpCue() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.cues {
		return
	}
	p.play(JumpCue(p.rate, p.volume))
}

func (p *Player) StopAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cancelFootsteps()
}

// Footsteps reports whether the footsteps loop is playing.
func (p *Player) Footsteps() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.footsteps != nil
}

// Playing returns the number of streamers in the mixer.
func (p *Player) Playing() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lock()
	defer p.unlock()
	return p.mixer.Len()
}
