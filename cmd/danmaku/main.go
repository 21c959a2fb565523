// danmaku is a top-down vertical shooter for the terminal.
//
// Usage:
//
//	danmaku play             - Play locally
//	danmaku serve            - Start SSH server for remote play
//	danmaku scores           - Show high scores
//	danmaku config           - Print the effective tuning as YAML
//	danmaku sim              - Run a headless, seeded simulation
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.danmaku/scores.db)
//	--config <path>  - Use a custom tuning YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-danmaku/internal/games/danmaku"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "danmaku",
	Short: "Danmaku - a vertical shooter in your terminal",
	Long: `Danmaku is a top-down vertical shooter played in the terminal,
locally or over SSH.

Available commands:
  play     - Play locally
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective tuning
  sim      - Run a headless simulation

Examples:
  danmaku play
  danmaku play --config ./hard.yaml
  danmaku serve --ssh :2222 --metrics :9100
  danmaku scores --board`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		danmaku.SetConfigPath(flagConfig)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.danmaku/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(simCmd)
}
