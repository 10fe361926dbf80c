package tui

import "testing"

func TestFrameSchedulerOneInFlight(t *testing.T) {
	s := newFrameScheduler(60)

	if cmd := s.next(); cmd != nil {
		t.Fatal("next() without a request returned a tick")
	}
	s.RequestFrame()
	if cmd := s.next(); cmd == nil {
		t.Fatal("next() after RequestFrame returned no tick")
	}
	s.RequestFrame()
	if cmd := s.next(); cmd != nil {
		t.Error("next() returned a second tick while one is in flight")
	}
	if !s.deliver(frameMsg{gen: s.gen}) {
		t.Error("deliver() dropped a live frame")
	}
	if cmd := s.next(); cmd == nil {
		t.Error("request made while in flight was lost")
	}
}

func TestFrameSchedulerCancel(t *testing.T) {
	s := newFrameScheduler(0)
	if s.interval <= 0 {
		t.Fatalf("interval = %v, expected a default rate", s.interval)
	}

	s.RequestFrame()
	s.next()
	stale := frameMsg{gen: s.gen}
	s.CancelFrame()

	if s.deliver(stale) {
		t.Error("deliver() accepted a frame from before CancelFrame")
	}
	if cmd := s.next(); cmd != nil {
		t.Error("next() after CancelFrame returned a tick")
	}
}
