package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/skybird/internal/leaderboard"
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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Player: "ada", Score: 180, Duration: 12 * time.Second, Reason: "collision"},
		{Score: 120, Duration: 3500 * time.Millisecond, Reason: "hazard"},
		{Player: "bo", Score: 400, Duration: time.Minute, Reason: "collision"},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Should be sorted descending
	if top[0].Score != 400 || top[1].Score != 180 || top[2].Score != 120 {
		t.Errorf("Runs not in expected order: %v", top)
	}
	if top[0].Player != "bo" || top[0].Duration != time.Minute || top[0].Reason != "collision" {
		t.Errorf("Run fields not preserved: %+v", top[0])
	}
	if top[2].Duration != 3500*time.Millisecond || top[2].Player != "" {
		t.Errorf("Anonymous run not preserved: %+v", top[2])
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{Score: (i + 1) * 100})
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", top)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 4; i++ {
		store.SaveRun(Run{Score: 100 + i})
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 103 || recent[1].Score != 102 {
		t.Errorf("Expected the two newest runs, got %v", recent)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best score of 0 for empty history, got %d", best)
	}

	store.SaveRun(Run{Score: 100})
	store.SaveRun(Run{Score: 300})
	store.SaveRun(Run{Score: 200})

	best, err = store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("Expected best score of 300, got %d", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.BestScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Unexpected stats for empty history: %+v", empty)
	}

	store.SaveRun(Run{Score: 100, Duration: 10 * time.Second})
	store.SaveRun(Run{Score: 200, Duration: 20 * time.Second})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.BestScore != 200 || stats.AvgScore != 150 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.TotalPlayed != 30*time.Second {
		t.Errorf("TotalPlayed = %v, expected 30s", stats.TotalPlayed)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Score: 100})
	store.SaveRun(Run{Score: 200})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}

func TestStoreKV(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Get("missing"); ok || err != nil {
		t.Errorf("Get(missing) = ok %v, err %v", ok, err)
	}

	if err := store.Set("k", "one"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set("k", "two"); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}

	v, ok, err := store.Get("k")
	if err != nil || !ok || v != "two" {
		t.Errorf("Get(k) = %q, %v, %v; expected two", v, ok, err)
	}
}

func TestStoreBacksLeaderboard(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "shared.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	board := leaderboard.Open(store)
	if _, err := board.Submit("ada", 321); err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	store.Close()

	// Reopen the file and read the board back
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	entries := leaderboard.Open(store).Entries()
	if len(entries) != 1 || entries[0].Name != "ada" || entries[0].Score != 321 {
		t.Errorf("Unexpected entries after reopen: %v", entries)
	}
}

func TestStoreNestedPath(t *testing.T) {
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
