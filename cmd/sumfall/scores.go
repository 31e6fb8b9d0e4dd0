package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <difficulty>",
	Short: "Show top scores for a difficulty",
	Long: `Display the top 10 finished games for the specified difficulty.

Examples:
  sumfall scores medium
  sumfall scores nightmare++`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	tag := args[0]
	cfg := loadConfig()

	if _, ok := cfg.Difficulty(tag); !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", tag)
		fmt.Fprintln(os.Stderr, "Run 'sumfall list' to see available difficulties.")
		os.Exit(1)
	}

	store := openStore()

	scores, err := store.TopScores(tag, 10)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fmt.Printf("Top Scores - %s\n", difficultyLabel(cfg, tag))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'sumfall play --difficulty %s' to set the first score!\n", tag)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-8s  %s\n", "Rank", "Points", "Clears", "Mode", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-8s  %s\n", "----", "------", "------", "----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-6d  %-8s  %s\n", i+1, entry.Points, entry.Combinations, entry.Mode, dateStr)
	}

	fmt.Println()
	if best, err := store.HighScore(tag); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}
