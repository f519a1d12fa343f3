package storage

import (
	"os"
	"path/filepath"
	"sync"
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

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(RunRecord{GameID: "runner", Score: 1234}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("runner")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 1234 {
		t.Errorf("Expected high score 1234 after reopen, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{GameID: "runner", Score: 100, Frames: 90, MaxLives: 3, Coins: 0},
		{GameID: "runner", Score: 2500, Frames: 1800, MaxLives: 4, Coins: 6},
		{GameID: "runner", Score: 700, Frames: 600, MaxLives: 3, Coins: 1},
		{GameID: "runner_classic", Score: 9000, Frames: 5000, MaxLives: 5, Coins: 30},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("runner", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	if top[0].Score != 2500 || top[1].Score != 700 || top[2].Score != 100 {
		t.Errorf("Runs not sorted by score: %+v", top)
	}
	if top[0].Frames != 1800 || top[0].MaxLives != 4 || top[0].Coins != 6 {
		t.Errorf("Run details not stored: %+v", top[0])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}

	classic, err := store.TopRuns("runner_classic", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(classic) != 1 {
		t.Errorf("Expected 1 classic run, got %d", len(classic))
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(RunRecord{GameID: "test", Score: (i + 1) * 100})
	}

	top, err := store.TopRuns("test", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("Runs not in expected order: %+v", top)
	}
}

func TestStoreTopRunsTieOrder(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.SaveRun(RunRecord{GameID: "runner", Score: 500})
	second, _ := store.SaveRun(RunRecord{GameID: "runner", Score: 500})

	top, err := store.TopRuns("runner", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 2 || top[0].ID != first || top[1].ID != second {
		t.Errorf("Expected earlier run first on ties, got %+v", top)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("runner")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty history, got %d", high)
	}

	store.SaveRun(RunRecord{GameID: "runner", Score: 100})
	store.SaveRun(RunRecord{GameID: "runner", Score: 300})
	store.SaveRun(RunRecord{GameID: "runner", Score: 200})

	high, err = store.HighScore("runner")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{GameID: "runner", Score: 100})
	store.SaveRun(RunRecord{GameID: "runner_random", Score: 200})

	if err := store.ClearRuns("runner"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	top, _ := store.TopRuns("runner", 10)
	if len(top) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(top))
	}
	other, _ := store.TopRuns("runner_random", 10)
	if len(other) != 1 {
		t.Errorf("Clear should not touch other variants, got %d runs", len(other))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("runner")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveRun(RunRecord{GameID: "runner", Score: 100, Frames: 100, Coins: 2})
	store.SaveRun(RunRecord{GameID: "runner", Score: 300, Frames: 250, Coins: 5})

	stats, err := store.Stats("runner")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.HighScore != 300 || stats.BestFrames != 250 || stats.TotalCoins != 7 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average 200, got %v", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected last played to be set")
	}
}

func TestStoreConcurrentSaves(t *testing.T) {
	store := openTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			if _, err := store.SaveRun(RunRecord{GameID: "runner", Score: score}); err != nil {
				t.Errorf("SaveRun() failed: %v", err)
			}
		}(i * 10)
	}
	wg.Wait()

	top, err := store.TopRuns("runner", 100)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 8 {
		t.Errorf("Expected 8 runs, got %d", len(top))
	}
}
