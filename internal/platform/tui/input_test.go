package tui

import (
	"reflect"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestTranslator() *InputTranslator {
	return NewInputTranslator(DefaultKeyMap(), config.InputConfig{JumpHoldMs: 100, DuckHoldMs: 200})
}

func TestInputTranslatorKeys(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected []core.Intent
	}{
		{"jump", runes("w"), []core.Intent{core.JumpPressed}},
		{"duck", tea.KeyMsg{Type: tea.KeyDown}, []core.Intent{core.DuckPressed}},
		{"restart", runes("r"), []core.Intent{core.RestartRequested}},
		{"reset high score", runes("x"), []core.Intent{core.ResetHighScore}},
		{"pause", runes("p"), []core.Intent{core.PauseToggled}},
		{"unbound", runes("z"), nil},
	}

	now := time.Unix(100, 0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newTestTranslator().Key(tt.msg, now)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Key(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
			}
		})
	}
}

func TestInputTranslatorAutoRepeatHolds(t *testing.T) {
	in := newTestTranslator()
	now := time.Unix(100, 0)

	if got := in.Key(runes("w"), now); len(got) != 1 {
		t.Fatalf("first press = %v, expected one JumpPressed", got)
	}
	// Auto-repeat inside the hold window only extends the hold.
	now = now.Add(50 * time.Millisecond)
	if got := in.Key(runes("w"), now); got != nil {
		t.Errorf("repeat = %v, expected nothing", got)
	}
	now = now.Add(60 * time.Millisecond)
	if got := in.Due(now); got != nil {
		t.Errorf("Due() inside extended window = %v, expected nothing", got)
	}
	now = now.Add(50 * time.Millisecond)
	got := in.Due(now)
	if !reflect.DeepEqual(got, []core.Intent{core.JumpReleased}) {
		t.Errorf("Due() = %v, expected [JumpReleased]", got)
	}
	if jump, duck := in.Held(); jump || duck {
		t.Errorf("Held() = %v, %v, expected nothing held", jump, duck)
	}
}

func TestInputTranslatorRelease(t *testing.T) {
	in := newTestTranslator()
	now := time.Unix(100, 0)
	in.Tap(now)
	in.Key(tea.KeyMsg{Type: tea.KeyDown}, now)

	got := in.Release()
	expected := []core.Intent{core.JumpReleased, core.DuckReleased}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Release() = %v, expected %v", got, expected)
	}
	if got := in.Release(); got != nil {
		t.Errorf("second Release() = %v, expected nothing", got)
	}
}

func TestInputTranslatorArm(t *testing.T) {
	in := newTestTranslator()
	now := time.Unix(100, 0)

	if cmd := in.arm(now); cmd != nil {
		t.Error("arm() with nothing held returned a timer")
	}
	in.Tap(now)
	if cmd := in.arm(now); cmd == nil {
		t.Fatal("arm() with jump held returned no timer")
	}
	if cmd := in.arm(now); cmd != nil {
		t.Error("arm() returned a second timer while one is out")
	}
	in.disarm()
	if cmd := in.arm(now); cmd == nil {
		t.Error("arm() after disarm returned no timer")
	}
}
