package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sumfall/internal/progression"
	"github.com/vovakirdan/sumfall/internal/storage"
)

var flagProfileReset bool

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show best points and achievements",
	Long: `Display the local player's best points per difficulty and the
achievements unlocked so far.

Examples:
  sumfall profile
  sumfall profile --reset`,
	Run: runProfile,
}

func init() {
	profileCmd.Flags().BoolVar(&flagProfileReset, "reset", false, "Erase best points and achievements")
}

func runProfile(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, closeLog := newLogger("sumfall")
	defer closeLog()

	store := openStore()
	defer store.Close()

	repo := storage.NewProfileRepo(store, storage.ProfileKey, logger)
	if flagProfileReset {
		if err := repo.Reset(); err != nil {
			fmt.Fprintf(os.Stderr, "Error resetting profile: %v\n", err)
			return
		}
		fmt.Println("Profile reset.")
		return
	}

	profile := repo.Load()
	catalog := progression.NewCatalog(cfg)
	tracker := progression.NewTracker(profile, catalog, nil, logger)
	stats := tracker.Stats()

	games, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load game stats: %v\n", err)
	}

	fmt.Printf("Profile - %d/%d achievements\n", stats.Unlocked, stats.Total)
	fmt.Println()

	fmt.Printf("  %-14s  %-8s  %-6s  %s\n", "Difficulty", "Best", "Games", "Achievements")
	fmt.Printf("  %-14s  %-8s  %-6s  %s\n", "----------", "----", "-----", "------------")

	for _, tag := range cfg.Tags() {
		marks := ""
		for _, a := range catalog.ForDifficulty(tag) {
			if profile.Has(a.ID) {
				marks += "*"
			} else {
				marks += "."
			}
		}
		fmt.Printf("  %-14s  %-8d  %-6d  %s\n", difficultyLabel(cfg, tag), profile.Best(tag), games[tag].GamesCount, marks)
	}

	unlocked := false
	for _, a := range catalog {
		if !profile.Has(a.ID) {
			continue
		}
		if !unlocked {
			fmt.Println()
			fmt.Println("Unlocked:")
			unlocked = true
		}
		fmt.Printf("  %-14s  %5d  %s\n", difficultyLabel(cfg, a.Difficulty), a.Points, a.Title)
	}
}
