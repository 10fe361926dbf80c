// Package tui hosts runner sessions in a terminal through Bubble Tea. It
// schedules frames, translates keys and mouse clicks into intents and
// rasterises the scene into styled text.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameMsg delivers a frame requested by the runner. Frames from before a
// CancelFrame carry an old generation and are dropped.
type frameMsg struct {
	gen int
}

// frameScheduler implements runner.Scheduler on top of tea.Tick. At most one
// tick is in flight; a request made while one is in flight waits for it.
type frameScheduler struct {
	interval time.Duration
	pending  bool
	inFlight bool
	gen      int
}

func newFrameScheduler(fps int) *frameScheduler {
	if fps <= 0 {
		fps = 60
	}
	return &frameScheduler{interval: time.Second / time.Duration(fps)}
}

func (s *frameScheduler) RequestFrame() { s.pending = true }

func (s *frameScheduler) CancelFrame() {
	s.pending = false
	s.gen++
}

// next returns the command that delivers the pending frame, if any.
func (s *frameScheduler) next() tea.Cmd {
	if !s.pending || s.inFlight {
		return nil
	}
	s.pending = false
	s.inFlight = true
	gen := s.gen
	return tea.Tick(s.interval, func(time.Time) tea.Msg {
		return frameMsg{gen: gen}
	})
}

// deliver reports whether msg is a live frame.
func (s *frameScheduler) deliver(msg frameMsg) bool {
	s.inFlight = false
	return msg.gen == s.gen
}
