package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/storage"
)

func TestScoreboardShowsBoardRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	first := Boards()[0]
	if _, err := store.RecordScore(first.ID, "alice", 321); err != nil {
		t.Fatalf("RecordScore() error = %v", err)
	}

	m := NewScoreboardModel(store, 100, 30)
	if len(m.runs) != 1 || m.runs[0].Player != "alice" {
		t.Fatalf("runs = %+v, expected alice's run", m.runs)
	}
	if got := m.summary(); !strings.Contains(got, "best 00321") {
		t.Errorf("summary() = %q, expected best 00321", got)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.cursor != 1 || len(m.runs) != 0 {
		t.Errorf("after tab: cursor = %d, runs = %d, expected 1 and 0", m.cursor, len(m.runs))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.(ScoreboardModel).Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.cursor != len(m.boards)-1 {
		t.Errorf("shift+tab wrap: cursor = %d, expected %d", m.cursor, len(m.boards)-1)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if got := m.summary(); got != "no runs yet" {
		t.Errorf("summary() = %q, expected no runs yet", got)
	}
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("View() does not show the empty message")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc did not go back")
	}
}
