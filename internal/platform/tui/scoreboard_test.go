package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-danmaku/internal/storage"
)

func TestScoreRows(t *testing.T) {
	entries := []storage.ScoreEntry{
		{Player: "ada", Score: 12, Ticks: 60 * 75, CreatedAt: time.Date(2026, 3, 4, 5, 6, 0, 0, time.UTC)},
		{Player: "bob", Score: 3, Ticks: 59},
	}

	rows := scoreRows(entries)
	if len(rows) != 2 {
		t.Fatalf("scoreRows() returned %d rows, expected 2", len(rows))
	}

	expected := []string{"#1", "ada", "12", "1:15", "Mar 04 05:06"}
	for i, want := range expected {
		if rows[0][i] != want {
			t.Errorf("row 0 column %d = %q, expected %q", i, rows[0][i], want)
		}
	}
	if rows[1][0] != "#2" || rows[1][3] != "0:00" {
		t.Errorf("row 1 = %v", rows[1])
	}
}

func TestScoreboardShowsRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	run := storage.NewRun("danmaku", "ada", 1)
	run.Score = 42
	if _, err := store.SaveRun(run); err != nil {
		t.Fatalf("SaveRun() error = %v", err)
	}

	m := NewScoreboardModel(store, "danmaku", "Danmaku", 100, 30)
	view := m.View()
	for _, want := range []string{"HIGH SCORES - Danmaku", "ada", "42", "1 runs by 1 players"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestScoreboardEmptyAndClose(t *testing.T) {
	m := NewScoreboardModel(nil, "danmaku", "Danmaku", 80, 24)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty board should say so")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should close the scoreboard")
	}
	if next.(ScoreboardModel).View() != "" {
		t.Error("closed scoreboard should render nothing")
	}
}
