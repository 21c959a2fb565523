package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-danmaku/internal/core"
	"github.com/vovakirdan/tui-danmaku/internal/platform/metrics"
	"github.com/vovakirdan/tui-danmaku/internal/registry"
	"github.com/vovakirdan/tui-danmaku/internal/storage"
)

// maxFrameElapsed caps the time one frame may simulate, so a stalled
// terminal or SSH link does not teleport entities.
const maxFrameElapsed = 100 * time.Millisecond

// Options configures a Model.
type Options struct {
	Runtime core.RuntimeConfig

	// Player is saved with every finished run.
	Player string
	// Source labels metrics, e.g. "local" or "ssh".
	Source string

	Store      *storage.Store    // nil disables score saving
	Metrics    *metrics.Recorder // nil disables metrics
	Logger     *log.Logger       // nil discards logs
	HoldWindow time.Duration
}

// loggerSetter is implemented by games that log their own events.
type loggerSetter interface {
	SetLogger(l *log.Logger)
}

// Model is the Bubble Tea model running one game.
type Model struct {
	game   registry.Game
	screen *core.Screen
	opts   Options
	keys   KeyMap
	help   help.Model
	held   *heldKeys

	lastTick time.Time
	state    core.GameState

	run       *storage.Run // run in progress, nil outside play
	runStart  uint64       // tick the current run started on
	lastSaved *storage.Run

	quitting bool
}

// NewModel creates a model for game. A zero seed is replaced by a time-based one.
func NewModel(game registry.Game, opts Options) Model {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Source == "" {
		opts.Source = "local"
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	} else if ls, ok := game.(loggerSetter); ok {
		ls.SetLogger(opts.Logger)
	}

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	return Model{
		game:   game,
		screen: core.NewScreen(opts.Runtime.ScreenW, playHeight(opts.Runtime.ScreenH)),
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   h,
		held:   newHeldKeys(opts.HoldWindow),
	}
}

// playHeight leaves the bottom row for the help line.
func playHeight(h int) int {
	return max(h-1, 1)
}

// Init resets the game and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.opts.Runtime)
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.opts.Logger.Warn("screenshot failed", "err", err)
		} else {
			m.opts.Logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.held.press(action, now)
	return m, nil
}

// handleResize only resizes the buffer; the field is scaled on every render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	// The first frame has no previous tick and simulates one fixed tick.
	elapsed := time.Second / time.Duration(m.opts.Runtime.TickRate)
	if !m.lastTick.IsZero() {
		elapsed = min(now.Sub(m.lastTick), maxFrameElapsed)
	}
	m.lastTick = now

	in := m.held.frame(now, elapsed)

	start := time.Now()
	res := m.game.Step(in)
	m.opts.Metrics.ObserveFrame(time.Since(start))
	m.state = res.State

	if res.Started {
		m.startRun()
	}
	if res.Kills > 0 {
		m.opts.Metrics.EnemiesDestroyed(res.Kills)
	}
	if res.Ended {
		m.finishRun()
	}

	return m, tickCmd(m.opts.Runtime.TickRate)
}

func (m *Model) startRun() {
	run := storage.NewRun(m.game.ID(), m.opts.Player, m.opts.Runtime.Seed)
	m.run = &run
	m.runStart = m.state.Tick
	m.opts.Metrics.RunStarted(m.opts.Source)
	m.opts.Logger.Debug("run started", "run", run.ID, "player", run.Player)
}

// finishRun saves the run in progress once.
func (m *Model) finishRun() {
	if m.run == nil {
		return
	}
	run := *m.run
	m.run = nil

	run.Score = m.state.Score
	run.Ticks = m.state.Tick - m.runStart
	m.opts.Metrics.RunEnded(m.opts.Source, run.Score)

	if m.opts.Store != nil {
		if _, err := m.opts.Store.SaveRun(run); err != nil {
			m.opts.Logger.Warn("could not save run", "run", run.ID, "err", err)
		}
	}
	m.lastSaved = &run
	m.opts.Logger.Info("run finished", "run", run.ID, "player", run.Player, "score", run.Score, "ticks", run.Ticks)
}

// saveScreenshot writes the current frame as plain text under ~/.danmaku/screenshots.
func (m Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".danmaku", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil { //#nosec G301 -- user data dir
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	m.draw()
	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

func (m Model) draw() {
	m.screen.Clear()
	m.game.Render(m.screen)
}

// View renders the playfield with a help line below it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game state after the last frame.
func (m Model) State() core.GameState {
	return m.state
}

// LastRun returns the most recently finished run, if any.
func (m Model) LastRun() (storage.Run, bool) {
	if m.lastSaved == nil {
		return storage.Run{}, false
	}
	return *m.lastSaved, true
}

// Run starts a Bubble Tea program for game in the alternate screen.
func Run(game registry.Game, opts Options) error {
	p := tea.NewProgram(NewModel(game, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
