package runner

import "time"

// Clock returns a monotonic time in milliseconds.
type Clock interface {
	Now() float64
}

// MonotonicClock measures milliseconds since it was created.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock starts a clock at zero.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

func (c *MonotonicClock) Now() float64 {
	return float64(time.Since(c.start)) / float64(time.Millisecond)
}

// Scheduler arms at most one pending frame. RequestFrame while a frame is
// pending is a no-op; CancelFrame drops the pending frame.
type Scheduler interface {
	RequestFrame()
	CancelFrame()
}

// Audio receives gameplay sound events.
type Audio interface {
	OnJumpStart()
	OnCrash()
	OnScoreAchievement()
}

// CueAudio is implemented by audio collaborators that support the audio cue
// accessibility mode.
type CueAudio interface {
	Background()
	LoopFootsteps()
	CancelFootsteps()
	JumpCue()
	StopAll()
}

// NopAudio is a silent Audio.
type NopAudio struct{}

func (NopAudio) OnJumpStart()        {}
func (NopAudio) OnCrash()            {}
func (NopAudio) OnScoreAchievement() {}

// HighScores persists the best displayed score.
type HighScores interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// ScoreRecorder is implemented by persistence collaborators that also keep
// a history of finished runs.
type ScoreRecorder interface {
	RecordScore(score int) error
}

// Panel is the game-over overlay.
type Panel interface {
	Draw()
	Reset()
}

// Animator is implemented by panels that animate after Draw. Update returns
// true while more frames are needed.
type Animator interface {
	Update(dt float64) bool
}
