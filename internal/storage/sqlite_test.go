package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveScore("arkanoid", 100, 1)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("arkanoid", 50, 1)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("arkanoid", 200, 1)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("arkanoid_endless", 500, 1)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for campaign
	scores, err := store.TopScores("arkanoid", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for endless
	endlessScores, err := store.TopScores("arkanoid_endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(endlessScores) != 1 {
		t.Errorf("Expected 1 endless score, got %d", len(endlessScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100, 1)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("arkanoid")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("arkanoid", 100, 1)
	store.SaveScore("arkanoid", 300, 1)
	store.SaveScore("arkanoid", 200, 1)

	high, err = store.HighScore("arkanoid")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("arkanoid", 100, 1)
	store.SaveScore("arkanoid", 200, 1)
	store.SaveScore("arkanoid_endless", 300, 1)

	// Clear only campaign scores
	err = store.ClearScores("arkanoid")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Campaign should be empty
	campaignScores, _ := store.TopScores("arkanoid", 10)
	if len(campaignScores) != 0 {
		t.Errorf("Expected 0 campaign scores after clear, got %d", len(campaignScores))
	}

	// Endless should still have scores
	endlessScores, _ := store.TopScores("arkanoid_endless", 10)
	if len(endlessScores) != 1 {
		t.Errorf("Endless scores should not be affected by clearing campaign")
	}
}

func TestStoreAllScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Add many scores
	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10, 1)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

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

func TestStoreLevelAndStats(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	clock := time.Unix(1_700_000_000, 0)
	store.now = func() time.Time { return clock }

	store.SaveScore("arkanoid", 300, 2)
	clock = clock.Add(time.Hour)
	store.SaveScore("arkanoid", 100, 4)
	store.SaveScore("arkanoid_endless", 700, 0)

	scores, err := store.TopScores("arkanoid", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].Level != 2 || scores[1].Level != 4 {
		t.Errorf("levels = %d, %d; want 2, 4", scores[0].Level, scores[1].Level)
	}
	if !scores[0].CreatedAt.Equal(time.Unix(1_700_000_000, 0)) {
		t.Errorf("CreatedAt = %v", scores[0].CreatedAt)
	}

	stats, err := store.GetGameStats("arkanoid")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.BestLevel != 4 || stats.TotalScore != 400 {
		t.Errorf("GetGameStats() = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if !stats.LastPlayed.Equal(clock) {
		t.Errorf("LastPlayed = %v, want %v", stats.LastPlayed, clock)
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatalf("GetGameStats() on empty game failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["arkanoid_endless"].BestLevel != 1 {
		t.Errorf("GetAllGamesStats() = %v", all)
	}
}
