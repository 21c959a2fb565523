package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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

func save(t *testing.T, store *Store, gameID, player string, score int) Run {
	t.Helper()
	r := NewRun(gameID, player, 42)
	r.Score = score
	if _, err := store.SaveRun(r); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	return r
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

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

	save(t, store, "danmaku", "alice", 10)
	save(t, store, "danmaku", "bob", 5)
	top := save(t, store, "danmaku", "carol", 20)
	save(t, store, "other", "alice", 50)

	scores, err := store.TopScores("danmaku", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	if scores[0].Score != 20 || scores[1].Score != 10 || scores[2].Score != 5 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].Player != "carol" || scores[0].RunID != top.ID.String() {
		t.Errorf("top entry = %+v, expected carol's run %s", scores[0], top.ID)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}
}

func TestStoreSaveRunIsIdempotent(t *testing.T) {
	store := openTestStore(t)

	r := NewRun("danmaku", "alice", 7)
	r.Score = 12
	r.Ticks = 3600

	written, err := store.SaveRun(r)
	if err != nil || !written {
		t.Fatalf("first SaveRun() = %v, %v; expected true, nil", written, err)
	}

	r.Score = 99
	written, err = store.SaveRun(r)
	if err != nil {
		t.Fatalf("second SaveRun() failed: %v", err)
	}
	if written {
		t.Error("second SaveRun() with the same ID wrote a row")
	}

	scores, _ := store.TopScores("danmaku", 0)
	if len(scores) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(scores))
	}
	if scores[0].Score != 12 || scores[0].Ticks != 3600 {
		t.Errorf("stored run = %+v, expected the first save to win", scores[0])
	}
}

func TestStoreSaveRunRequiresID(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(Run{ID: uuid.Nil, GameID: "danmaku"}); err == nil {
		t.Error("SaveRun() accepted a run without ID")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		save(t, store, "danmaku", "p", (i+1)*100)
	}

	scores, err := store.TopScores("danmaku", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, err := store.TopScores("danmaku", 0)
	if err != nil {
		t.Fatalf("TopScores(0) failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected all 5 scores without limit, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("danmaku")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	save(t, store, "danmaku", "a", 100)
	save(t, store, "danmaku", "b", 300)
	save(t, store, "danmaku", "c", 200)

	high, err = store.HighScore("danmaku")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "danmaku", "a", 100)
	save(t, store, "danmaku", "a", 200)
	save(t, store, "other", "a", 300)

	if err := store.ClearScores("danmaku"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("danmaku", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if other, _ := store.TopScores("other", 10); len(other) != 1 {
		t.Errorf("Other game scores should not be affected by clearing")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("danmaku")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	save(t, store, "danmaku", "alice", 10)
	save(t, store, "danmaku", "alice", 30)
	save(t, store, "danmaku", "bob", 20)

	stats, err := store.GetGameStats("danmaku")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.Players != 2 || stats.HighScore != 30 || stats.TotalScore != 60 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %f, expected 20", stats.AvgScore)
	}
}

func TestStoreNestedPath(t *testing.T) {
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
