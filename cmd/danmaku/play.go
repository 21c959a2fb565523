package main

import (
	"fmt"
	"os"
	"os/user"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-danmaku/internal/config"
	"github.com/vovakirdan/tui-danmaku/internal/core"
	"github.com/vovakirdan/tui-danmaku/internal/games/danmaku"
	"github.com/vovakirdan/tui-danmaku/internal/platform/tui"
	"github.com/vovakirdan/tui-danmaku/internal/registry"
	"github.com/vovakirdan/tui-danmaku/internal/storage"
)

var (
	flagLogFile string
	flagPlayer  string
	flagHold    time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play locally",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD  - Move
  Space        - Start, then hold to shoot
  P/Esc        - Pause
  Enter        - Restart after game over
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Terminals report key repeats but not releases, so a key stays held for
--hold after its last repeat.

Examples:
  danmaku play
  danmaku play --seed 42 --log-file ./danmaku.log
  danmaku play --config ./my-danmaku.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write a debug log to this file")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name saved with your runs (default: current user)")
	playCmd.Flags().DurationVar(&flagHold, "hold", tui.DefaultHoldWindow, "How long a key counts as held after its last repeat")
}

func runPlay(_ *cobra.Command, _ []string) {
	// A bad custom config is reported before the alternate screen hides it.
	if flagConfig != "" {
		if _, err := config.LoadDanmaku(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	game, err := registry.Create(danmaku.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger, closeLog, err := openLog(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Player:     playerName(),
		Source:     "local",
		Store:      store,
		Logger:     logger,
		HoldWindow: flagHold,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openLog opens a debug logger on path. With no path, logs are discarded
// because the alternate screen owns the terminal.
func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //#nosec G304 -- user-supplied log path
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "danmaku",
	})
	return logger, func() { f.Close() }, nil
}

func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}
