package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(MemoryDSN)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func save(t *testing.T, store *Store, r GameResult) {
	t.Helper()
	if _, err := store.SaveResult(r); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
}

func TestStoreOpenFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreMemoryKeepsData(t *testing.T) {
	store := openTestStore(t)

	// Several sequential queries must all see the same in-memory database
	for i := 0; i < 5; i++ {
		save(t, store, GameResult{GameID: "frogger", Score: i * 100})
	}

	scores, err := store.TopScores("frogger", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}
}

func TestIsMemory(t *testing.T) {
	tests := []struct {
		dsn      string
		expected bool
	}{
		{":memory:", true},
		{"file:scores?mode=memory&cache=shared", true},
		{"/tmp/scores.db", false},
		{"~/.frogger/scores.db", false},
	}

	for _, tt := range tests {
		if got := IsMemory(tt.dsn); got != tt.expected {
			t.Errorf("IsMemory(%q) = %v, expected %v", tt.dsn, got, tt.expected)
		}
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	save(t, store, GameResult{GameID: "frogger", Score: 100, LivesLeft: 0, Ticks: 900})
	save(t, store, GameResult{GameID: "frogger", Score: 500, Won: true, LivesLeft: 2, Ticks: 4200})
	save(t, store, GameResult{GameID: "frogger", Score: 200, LivesLeft: 0, Ticks: 1800})
	save(t, store, GameResult{GameID: "other", Score: 900})

	scores, err := store.TopScores("frogger", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 500 || scores[1].Score != 200 || scores[2].Score != 100 {
		t.Errorf("Scores not in expected order: %+v", scores)
	}

	best := scores[0]
	if !best.Won || best.LivesLeft != 2 || best.Ticks != 4200 {
		t.Errorf("Result fields not round-tripped: %+v", best)
	}
	if scores[1].Won {
		t.Error("Lost game stored as won")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		save(t, store, GameResult{GameID: "frogger", Score: (i + 1) * 100})
	}

	scores, err := store.TopScores("frogger", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreTopScoresTieOrder(t *testing.T) {
	store := openTestStore(t)

	save(t, store, GameResult{GameID: "frogger", Score: 300, Ticks: 1})
	save(t, store, GameResult{GameID: "frogger", Score: 300, Ticks: 2})

	scores, err := store.TopScores("frogger", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].Ticks != 1 {
		t.Errorf("Earlier game should rank first on a tie, got %+v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("frogger")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	save(t, store, GameResult{GameID: "frogger", Score: 100})
	save(t, store, GameResult{GameID: "frogger", Score: 300})
	save(t, store, GameResult{GameID: "frogger", Score: 200})

	high, err = store.HighScore("frogger")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	save(t, store, GameResult{GameID: "frogger", Score: 100})
	save(t, store, GameResult{GameID: "other", Score: 300})

	if err := store.ClearScores("frogger"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("frogger", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	other, _ := store.TopScores("other", 10)
	if len(other) != 1 {
		t.Error("Other games should not be affected by clearing")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("frogger")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Unexpected stats for empty scoreboard: %+v", empty)
	}

	save(t, store, GameResult{GameID: "frogger", Score: 100})
	save(t, store, GameResult{GameID: "frogger", Score: 500, Won: true, LivesLeft: 1})
	save(t, store, GameResult{GameID: "frogger", Score: 300})

	stats, err := store.GetGameStats("frogger")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.Wins != 1 || stats.HighScore != 500 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.TotalScore != 900 || stats.AvgScore != 300 {
		t.Errorf("Unexpected totals: total=%d avg=%v", stats.TotalScore, stats.AvgScore)
	}
}
