package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-danmaku/internal/registry"
)

// SessionModel manages one SSH session: menu -> game or scoreboard -> menu.
type SessionModel struct {
	gameID string
	title  string
	opts   Options

	menu  MenuModel
	game  *Model
	board *ScoreboardModel

	quitting bool
}

// NewSessionModel creates a session for gameID. opts is the template every
// game in the session is created with; each game gets a fresh seed.
func NewSessionModel(gameID string, opts Options) (SessionModel, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return SessionModel{}, err
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	m := SessionModel{
		gameID: gameID,
		title:  game.Title(),
		opts:   opts,
	}
	m.menu = m.newMenu()
	return m, nil
}

func (m SessionModel) newMenu() MenuModel {
	best := 0
	if m.opts.Store != nil {
		if hs, err := m.opts.Store.HighScore(m.gameID); err == nil {
			best = hs
		}
	}
	return NewMenuModel(m.title, best, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch {
	case m.game != nil:
		return m.updateGame(msg)
	case m.board != nil:
		return m.updateBoard(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	// A tick left over from a finished game ends its loop here.
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	choice, ok := m.menu.Chosen()
	if !ok {
		return m, cmd
	}

	switch choice {
	case MenuPlay:
		game, err := registry.Create(m.gameID)
		if err != nil {
			m.opts.Logger.Error("cannot create game", "game", m.gameID, "error", err)
			m.menu = m.newMenu()
			return m, nil
		}
		opts := m.opts
		opts.Runtime.Seed = time.Now().UnixNano()
		model := NewModel(game, opts)
		m.game = &model
		return m, model.Init()
	case MenuScores:
		board := NewScoreboardModel(m.opts.Store, m.gameID, m.title, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		m.board = &board
		return m, board.Init()
	default:
		m.quitting = true
		return m, tea.Quit
	}
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	game, ok := next.(Model)
	if !ok {
		return m, cmd
	}
	if game.quitting {
		// Quitting a game returns to the menu, not out of the session.
		m.game = nil
		m.menu = m.newMenu()
		return m, nil
	}
	m.game = &game
	return m, cmd
}

func (m SessionModel) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}
	next, cmd := m.board.Update(msg)
	board, ok := next.(ScoreboardModel)
	if !ok {
		return m, cmd
	}
	if board.done {
		m.board = nil
		m.menu = m.newMenu()
		return m, nil
	}
	m.board = &board
	return m, cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.game != nil:
		return m.game.View()
	case m.board != nil:
		return m.board.View()
	}
	return m.menu.View()
}
