package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List difficulties",
	Long:  `Shows every difficulty and how often the falling tile drops one row.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	if len(cfg.Difficulties) == 0 {
		fmt.Println("No difficulties configured.")
		return
	}

	fmt.Println("Difficulties:")
	fmt.Println()

	maxTagLen := 3 // "Tag" header
	for _, d := range cfg.Difficulties {
		if len(d.Tag) > maxTagLen {
			maxTagLen = len(d.Tag)
		}
	}

	fmt.Printf("  %-*s  %-14s  %s\n", maxTagLen, "Tag", "Label", "Tick")
	fmt.Printf("  %-*s  %-14s  %s\n", maxTagLen, "---", "-----", "----")

	for _, d := range cfg.Difficulties {
		marker := ""
		if d.Tag == cfg.DefaultDifficulty {
			marker = "  (default)"
		}
		fmt.Printf("  %-*s  %-14s  %v%s\n", maxTagLen, d.Tag, d.Label, d.Tick(), marker)
	}

	fmt.Println()
	fmt.Println("Run 'sumfall play --difficulty <tag>' to play.")
}
