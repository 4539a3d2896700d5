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

	for _, r := range []Result{
		{Height: 4, Width: 4, Score: 1200, MaxTile: 128, Moves: 150, Seed: 1},
		{Height: 4, Width: 4, Score: 300, MaxTile: 32, Moves: 60, Seed: 2},
		{Height: 4, Width: 4, Score: 5400, MaxTile: 512, Moves: 410, Seed: 3},
		{Height: 3, Width: 3, Score: 9000, MaxTile: 1024, Moves: 800, Won: true},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	results, err := store.TopResults(4, 4, 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 results for 4x4, got %d", len(results))
	}

	// Should be sorted by score descending
	if results[0].Score != 5400 || results[1].Score != 1200 || results[2].Score != 300 {
		t.Errorf("Results not in expected order: %+v", results)
	}
	if results[0].MaxTile != 512 || results[0].Moves != 410 || results[0].Seed != 3 {
		t.Errorf("Fields not preserved: %+v", results[0])
	}
	if results[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}

	small, err := store.TopResults(3, 3, 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(small) != 1 || !small[0].Won {
		t.Errorf("Expected one won 3x3 result, got %+v", small)
	}
}

func TestStoreTopResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveResult(Result{Height: 4, Width: 4, Score: (i + 1) * 100, MaxTile: 64})
	}

	results, err := store.TopResults(4, 4, 3)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Errorf("Expected 3 results with limit, got %d", len(results))
	}
	if results[0].Score != 500 || results[1].Score != 400 || results[2].Score != 300 {
		t.Errorf("Results not in expected order: %+v", results)
	}

	// Non-positive limit falls back to 10
	all, err := store.TopResults(4, 4, 0)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 results with default limit, got %d", len(all))
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore(4, 4)
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best score of 0 for empty store, got %d", best)
	}

	store.SaveResult(Result{Height: 4, Width: 4, Score: 100})
	store.SaveResult(Result{Height: 4, Width: 4, Score: 300})
	store.SaveResult(Result{Height: 5, Width: 5, Score: 900})

	best, err = store.BestScore(4, 4)
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("Expected best score of 300, got %d", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats(4, 4)
	if err != nil {
		t.Fatalf("Stats() on empty store failed: %v", err)
	}
	if empty.Sessions != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveResult(Result{Height: 4, Width: 4, Score: 100, MaxTile: 16, Moves: 10})
	store.SaveResult(Result{Height: 4, Width: 4, Score: 300, MaxTile: 2048, Moves: 30, Won: true})

	stats, err := store.Stats(4, 4)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Sessions != 2 || stats.BestScore != 300 || stats.BestTile != 2048 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 200 || stats.TotalMoves != 40 || stats.Wins != 1 {
		t.Errorf("Unexpected aggregates: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not populated")
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{Height: 4, Width: 4, Score: 100})
	store.SaveResult(Result{Height: 4, Width: 4, Score: 200})
	store.SaveResult(Result{Height: 3, Width: 3, Score: 300})

	// Clear only 4x4 results
	if err := store.ClearResults(4, 4); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	cleared, _ := store.TopResults(4, 4, 10)
	if len(cleared) != 0 {
		t.Errorf("Expected 0 results after clear, got %d", len(cleared))
	}

	kept, _ := store.TopResults(3, 3, 10)
	if len(kept) != 1 {
		t.Errorf("3x3 results should not be affected by clearing 4x4")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
