package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-danmaku/internal/games/danmaku"
	"github.com/vovakirdan/tui-danmaku/internal/platform/tui"
	"github.com/vovakirdan/tui-danmaku/internal/storage"
)

var (
	flagLimit int
	flagBoard bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs.

Examples:
  danmaku scores
  danmaku scores --limit 25
  danmaku scores --board     # interactive scoreboard
  danmaku scores --clear     # delete every saved run`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show (0 = all)")
	scoresCmd.Flags().BoolVar(&flagBoard, "board", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all saved runs")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	title := danmaku.New().Title()

	switch {
	case flagClear:
		if err := store.ClearScores(danmaku.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	case flagBoard:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, danmaku.ID, title, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(danmaku.ID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'danmaku play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-16s  %-6s  %-8s  %s\n", "Rank", "Player", "Score", "Frames", "Date")
	fmt.Printf("  %-4s  %-16s  %-6s  %-8s  %s\n", "----", "------", "-----", "------", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-16s  %-6d  %-8d  %s\n", i+1, e.Player, e.Score, e.Ticks, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(danmaku.ID); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Players: %d  Best: %d  Average: %.1f\n",
			stats.GamesCount, stats.Players, stats.HighScore, stats.AvgScore)
	}
}
