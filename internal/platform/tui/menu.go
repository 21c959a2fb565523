package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuItem is one entry of the session menu.
type MenuItem int

const (
	MenuPlay MenuItem = iota
	MenuScores
	MenuQuit
)

var menuLabels = [...]string{
	MenuPlay:   "Play",
	MenuScores: "High scores",
	MenuQuit:   "Quit",
}

func (i MenuItem) String() string {
	if int(i) < len(menuLabels) {
		return menuLabels[i]
	}
	return "unknown"
}

// MenuKeyMap defines the key bindings for the session menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuModel lets an SSH user pick between playing, the scoreboard and leaving.
// It never quits the program itself; the owner reads Chosen.
type MenuModel struct {
	title  string
	best   int
	cursor int
	width  int
	height int
	keys   MenuKeyMap
	help   help.Model
	chosen *MenuItem
}

// NewMenuModel creates a menu for the game called title. best is the current high score.
func NewMenuModel(title string, best, width, height int) MenuModel {
	return MenuModel{
		title:  title,
		best:   best,
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.choose(MenuQuit)
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(menuLabels)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			m.choose(MenuItem(m.cursor))
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m *MenuModel) choose(item MenuItem) {
	m.chosen = &item
}

// Chosen returns the selected item once the user has picked one.
func (m MenuModel) Chosen() (MenuItem, bool) {
	if m.chosen == nil {
		return 0, false
	}
	return *m.chosen, true
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cursorStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))

	// Spaced-out capitals, as on an arcade cabinet.
	spaced := strings.Join(strings.Split(strings.ToUpper(m.title), ""), " ")
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText(spaced, m.width)))
	b.WriteString("\n\n")
	if m.best > 0 {
		b.WriteString(dimStyle.Render(centerText(fmt.Sprintf("high score: %d", m.best), m.width)))
	}
	b.WriteString("\n\n")

	for i, label := range menuLabels {
		line := "  " + label
		if i == m.cursor {
			line = cursorStyle.Render("> " + label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(centerText(m.help.View(m.keys), m.width)))
	return b.String()
}
