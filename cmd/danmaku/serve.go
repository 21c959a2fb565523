package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-danmaku/internal/config"
	"github.com/vovakirdan/tui-danmaku/internal/games/danmaku"
	"github.com/vovakirdan/tui-danmaku/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
	flagMetricsAddr string
	flagServeHold   time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server where every connection plays its own game.

Runs are saved under the SSH username; all users share one leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.danmaku/host_key

Examples:
  danmaku serve                           # Listen on :23234 with auto-generated key
  danmaku serve --ssh :2222               # Listen on port 2222
  danmaku serve --metrics :9100           # Also serve Prometheus metrics on /metrics
  danmaku serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Idle time before disconnecting a session")
	serveCmd.Flags().StringVar(&flagMetricsAddr, "metrics", "", "Serve Prometheus metrics on this address (disabled if empty)")
	serveCmd.Flags().DurationVar(&flagServeHold, "hold", tui.DefaultHoldWindow, "How long a key counts as held after its last repeat")
}

func runServe(_ *cobra.Command, _ []string) {
	if flagConfig != "" {
		if _, err := config.LoadDanmaku(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = flagIdleTimeout
	cfg.MetricsAddress = flagMetricsAddr
	cfg.GameID = danmaku.ID
	cfg.TickRate = flagFPS
	cfg.HoldWindow = flagServeHold

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting danmaku SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
