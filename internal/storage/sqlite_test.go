package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	at := time.Date(2024, 3, 9, 18, 30, 0, 0, time.UTC)

	for _, s := range []struct {
		player string
		score  int
	}{
		{"ada", 100}, {"bob", 50}, {"ada", 200},
	} {
		if _, err := store.SaveScore("shooter", s.player, s.score, at); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("shooter_touch", "ada", 500, at); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("shooter", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
	}
	if scores[0].Player != "ada" {
		t.Errorf("top player = %q, expected ada", scores[0].Player)
	}
	if !scores[0].CreatedAt.Equal(at) {
		t.Errorf("CreatedAt = %v, expected %v", scores[0].CreatedAt, at)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := range 20 {
		if _, err := store.SaveScore("shooter", "p", i*10, time.Time{}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("shooter", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 190 {
		t.Errorf("Expected top score 190, got %d", scores[0].Score)
	}

	all, err := store.AllScores("shooter")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(all))
	}
}

func TestStoreTopPlayers(t *testing.T) {
	store := openTestStore(t)
	for _, s := range []struct {
		player string
		score  int
	}{
		{"ada", 300}, {"bob", 900}, {"ada", 1200}, {"cy", 50}, {"bob", 100},
	} {
		if _, err := store.SaveScore("shooter", s.player, s.score, time.Time{}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	board, err := store.TopPlayers("shooter", 10)
	if err != nil {
		t.Fatalf("TopPlayers() failed: %v", err)
	}
	want := []PlayerBest{
		{Player: "ada", Score: 1200, GamesCount: 2},
		{Player: "bob", Score: 900, GamesCount: 2},
		{Player: "cy", Score: 50, GamesCount: 1},
	}
	if len(board) != len(want) {
		t.Fatalf("Expected %d rows, got %d", len(want), len(board))
	}
	for i := range want {
		if board[i] != want[i] {
			t.Errorf("row %d = %+v, expected %+v", i, board[i], want[i])
		}
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	hs, err := store.HighScore("shooter")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 0 {
		t.Errorf("Expected 0 for empty game, got %d", hs)
	}

	store.SaveScore("shooter", "ada", 100, time.Time{})
	store.SaveScore("shooter", "bob", 300, time.Time{})
	store.SaveScore("shooter", "ada", 200, time.Time{})

	hs, _ = store.HighScore("shooter")
	if hs != 300 {
		t.Errorf("Expected high score 300, got %d", hs)
	}

	phs, err := store.PlayerHighScore("shooter", "ada")
	if err != nil {
		t.Fatalf("PlayerHighScore() failed: %v", err)
	}
	if phs != 200 {
		t.Errorf("Expected ada's best 200, got %d", phs)
	}
	if phs, _ := store.PlayerHighScore("shooter", "nobody"); phs != 0 {
		t.Errorf("Expected 0 for unknown player, got %d", phs)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("shooter", "ada", 100, time.Time{})
	store.SaveScore("shooter_touch", "ada", 100, time.Time{})

	if err := store.ClearScores("shooter"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("shooter", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	other, _ := store.TopScores("shooter_touch", 10)
	if len(other) != 1 {
		t.Error("ClearScores should only touch one game")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("shooter", "ada", 100, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	store.SaveScore("shooter", "bob", 300, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))

	stats, err := store.GetGameStats("shooter")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.PlayerCount != 2 || stats.HighScore != 300 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("avg=%v total=%d", stats.AvgScore, stats.TotalScore)
	}
	if stats.LastPlayed.Month() != time.February {
		t.Errorf("LastPlayed = %v", stats.LastPlayed)
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}
}

func TestStoreSaveData(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.Get("save_ada"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if err := store.Put("save_ada", []byte{1, 2, 3}); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	if err := store.Put("save_ada", []byte{4, 5}); err != nil {
		t.Fatalf("Put() overwrite failed: %v", err)
	}

	data, err := store.Get("save_ada")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if string(data) != string([]byte{4, 5}) {
		t.Errorf("Get() = %v, expected [4 5]", data)
	}

	if err := store.Delete("save_ada"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := store.Get("save_ada"); !errors.Is(err, ErrNotFound) {
		t.Error("deleted key should be gone")
	}
	if err := store.Delete("save_ada"); err != nil {
		t.Errorf("deleting a missing key should succeed, got %v", err)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.spacebattle/test.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".spacebattle", "test.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}
