package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// releaseMsg asks the model to emit the key releases that are due.
type releaseMsg struct{}

// InputTranslator turns terminal key presses into press and release
// intents. Terminals never report a release, so a key counts as held until
// auto-repeat stops arriving for its hold window.
type InputTranslator struct {
	keys     KeyMap
	jumpHold time.Duration
	duckHold time.Duration

	jumpUntil time.Time // zero when the key is up
	duckUntil time.Time
	armed     bool
}

// NewInputTranslator creates a translator with the hold windows of cfg.
func NewInputTranslator(keys KeyMap, cfg config.InputConfig) *InputTranslator {
	t := &InputTranslator{
		keys:     keys,
		jumpHold: time.Duration(cfg.JumpHoldMs) * time.Millisecond,
		duckHold: time.Duration(cfg.DuckHoldMs) * time.Millisecond,
	}
	if t.jumpHold <= 0 {
		t.jumpHold = 300 * time.Millisecond
	}
	if t.duckHold <= 0 {
		t.duckHold = 600 * time.Millisecond
	}
	return t
}

// Key translates one key press. Unbound keys give nothing.
func (t *InputTranslator) Key(msg tea.KeyMsg, now time.Time) []core.Intent {
	switch {
	case key.Matches(msg, t.keys.Jump):
		return t.Tap(now)
	case key.Matches(msg, t.keys.Duck):
		held := !t.duckUntil.IsZero()
		t.duckUntil = now.Add(t.duckHold)
		if held {
			return nil
		}
		return []core.Intent{core.DuckPressed}
	case key.Matches(msg, t.keys.Restart):
		return []core.Intent{core.RestartRequested}
	case key.Matches(msg, t.keys.ResetHigh):
		return []core.Intent{core.ResetHighScore}
	case key.Matches(msg, t.keys.Pause):
		return []core.Intent{core.PauseToggled}
	}
	return nil
}

// Tap presses jump, or extends the hold when it is already down.
func (t *InputTranslator) Tap(now time.Time) []core.Intent {
	held := !t.jumpUntil.IsZero()
	t.jumpUntil = now.Add(t.jumpHold)
	if held {
		return nil
	}
	return []core.Intent{core.JumpPressed}
}

// Due returns the releases whose hold window has passed by now.
func (t *InputTranslator) Due(now time.Time) []core.Intent {
	var out []core.Intent
	if !t.jumpUntil.IsZero() && !now.Before(t.jumpUntil) {
		t.jumpUntil = time.Time{}
		out = append(out, core.JumpReleased)
	}
	if !t.duckUntil.IsZero() && !now.Before(t.duckUntil) {
		t.duckUntil = time.Time{}
		out = append(out, core.DuckReleased)
	}
	return out
}

// Held reports which keys are down.
func (t *InputTranslator) Held() (jump, duck bool) {
	return !t.jumpUntil.IsZero(), !t.duckUntil.IsZero()
}

// Release drops every held key and returns the matching releases.
func (t *InputTranslator) Release() []core.Intent {
	var out []core.Intent
	if !t.jumpUntil.IsZero() {
		out = append(out, core.JumpReleased)
	}
	if !t.duckUntil.IsZero() {
		out = append(out, core.DuckReleased)
	}
	t.jumpUntil, t.duckUntil = time.Time{}, time.Time{}
	return out
}

// arm returns a timer for the earliest pending release. Only one timer is
// out at a time; disarm when it fires.
func (t *InputTranslator) arm(now time.Time) tea.Cmd {
	if t.armed {
		return nil
	}
	var next time.Time
	for _, until := range []time.Time{t.jumpUntil, t.duckUntil} {
		if !until.IsZero() && (next.IsZero() || until.Before(next)) {
			next = until
		}
	}
	if next.IsZero() {
		return nil
	}
	t.armed = true
	return tea.Tick(next.Sub(now), func(time.Time) tea.Msg { return releaseMsg{} })
}

func (t *InputTranslator) disarm() { t.armed = false }
