package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SetHighScore("classic", "ann", 321); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("classic", "ann")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 321 {
		t.Errorf("HighScore() = %d, expected 321", high)
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200, 400, 300} {
		if _, err := store.RecordScore("classic", "ann", score); err != nil {
			t.Fatalf("RecordScore() failed: %v", err)
		}
	}
	if _, err := store.RecordScore("ascii", "ann", 999); err != nil {
		t.Fatalf("RecordScore() failed: %v", err)
	}

	scores, err := store.TopScores("classic", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	expected := []int{400, 300, 200}
	if len(scores) != len(expected) {
		t.Fatalf("TopScores() returned %d entries, expected %d", len(scores), len(expected))
	}
	for i, e := range scores {
		if e.Score != expected[i] || e.BoardID != "classic" || e.Player != "ann" {
			t.Errorf("TopScores()[%d] = %+v, expected score %d", i, e, expected[i])
		}
	}

	all, err := store.AllScores("classic")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("AllScores() returned %d entries, expected 5", len(all))
	}
}

func TestStoreHighScoreUpsert(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("classic", "ann")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() = %d for a new player, expected 0", high)
	}

	tests := []struct {
		name  string
		score int
	}{
		{"first", 120},
		{"raise", 450},
		{"reset", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := store.SetHighScore("classic", "ann", tt.score); err != nil {
				t.Fatalf("SetHighScore() failed: %v", err)
			}
			high, err := store.HighScore("classic", "ann")
			if err != nil {
				t.Fatalf("HighScore() failed: %v", err)
			}
			if high != tt.score {
				t.Errorf("HighScore() = %d, expected %d", high, tt.score)
			}
		})
	}

	other, _ := store.HighScore("classic", "bob")
	if other != 0 {
		t.Errorf("HighScore() for another player = %d, expected 0", other)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.RecordScore("classic", "ann", 100)
	store.SetHighScore("classic", "ann", 100)
	store.RecordScore("ascii", "ann", 300)

	if err := store.ClearScores("classic"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("classic", 10)
	if len(scores) != 0 {
		t.Errorf("%d classic scores after clear, expected 0", len(scores))
	}
	if high, _ := store.HighScore("classic", "ann"); high != 0 {
		t.Errorf("HighScore() = %d after clear, expected 0", high)
	}
	if ascii, _ := store.TopScores("ascii", 10); len(ascii) != 1 {
		t.Errorf("ascii scores should not be affected by clearing classic")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("classic")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.RunsCount != 0 || empty.BestScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Stats() = %+v for an empty board", empty)
	}

	store.RecordScore("classic", "ann", 100)
	store.RecordScore("classic", "bob", 300)
	store.RecordScore("ascii", "ann", 50)

	stats, err := store.Stats("classic")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.BestScore != 300 || stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("Stats() = %+v", stats)
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 || all["ascii"].BestScore != 50 {
		t.Errorf("AllStats() = %v", all)
	}
}
