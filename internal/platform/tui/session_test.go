package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-danmaku/internal/core"
	"github.com/vovakirdan/tui-danmaku/internal/registry"
)

const sessionGameID = "tui-session-fake"

func init() {
	registry.Register(sessionGameID, func() registry.Game { return &fakeGame{} })
}

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	m, err := NewSessionModel(sessionGameID, Options{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60},
		Player:  "ada",
		Source:  "ssh",
	})
	if err != nil {
		t.Fatalf("NewSessionModel() error = %v", err)
	}
	return m
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected SessionModel", next)
	}
	return sm, cmd
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyQ     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
)

func TestSessionUnknownGame(t *testing.T) {
	if _, err := NewSessionModel("no-such-game", Options{}); err == nil {
		t.Error("NewSessionModel() should fail for an unknown game")
	}
}

func TestSessionPlayAndReturn(t *testing.T) {
	m := newTestSession(t)

	m, cmd := sessionUpdate(t, m, keyEnter)
	if m.game == nil {
		t.Fatal("Play should start a game")
	}
	if cmd == nil {
		t.Error("starting a game should start the tick loop")
	}
	if m.game.opts.Runtime.Seed == 0 {
		t.Error("each game should get a seed")
	}

	m, _ = sessionUpdate(t, m, TickMsg(time.Now()))
	if m.game.State().Tick != 1 {
		t.Errorf("game tick = %d, expected 1", m.game.State().Tick)
	}

	// q leaves the game but keeps the session open.
	m, cmd = sessionUpdate(t, m, keyQ)
	if m.game != nil {
		t.Error("q should return to the menu")
	}
	if cmd != nil {
		t.Error("leaving a game should not quit the session")
	}

	// Stale ticks are dropped by the menu.
	m, cmd = sessionUpdate(t, m, TickMsg(time.Now()))
	if cmd != nil {
		t.Error("menu should not continue the tick loop")
	}
	if m.View() == "" {
		t.Error("menu should render")
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := newTestSession(t)

	m, _ = sessionUpdate(t, m, keyDown)
	m, _ = sessionUpdate(t, m, keyEnter)
	if m.board == nil {
		t.Fatal("High scores should open the scoreboard")
	}

	m, cmd := sessionUpdate(t, m, keyEsc)
	if m.board != nil {
		t.Error("esc should close the scoreboard")
	}
	if cmd != nil {
		t.Error("closing the scoreboard should not quit the session")
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession(t)

	m, cmd := sessionUpdate(t, m, keyQ)
	if cmd == nil {
		t.Fatal("q in the menu should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q in the menu should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel("Danmaku", 12, 80, 24)

	// Cursor stops at both ends.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(MenuModel)
	for range 5 {
		next, _ = m.Update(keyDown)
		m = next.(MenuModel)
	}
	next, _ = m.Update(keyEnter)
	m = next.(MenuModel)

	item, ok := m.Chosen()
	if !ok || item != MenuQuit {
		t.Errorf("Chosen() = %v, %v, expected %v", item, ok, MenuQuit)
	}
}
