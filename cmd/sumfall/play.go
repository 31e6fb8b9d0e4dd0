package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sumfall/internal/games/sumfall"
	"github.com/vovakirdan/sumfall/internal/platform/tui"
	"github.com/vovakirdan/sumfall/internal/storage"
)

var (
	flagDifficulty string
	flagMode       string
	flagSeed       int64
	flagResume     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game directly",
	Long: `Start a game without going through the menu.

Controls:
  Left/Right/A/D/H/L  - Move the falling tile
  Down/S/J            - Drop one row
  Space/P             - Pause
  Ctrl+S              - Save the game
  R                   - New game (after game over)
  Esc/B               - Back to menu
  Q/Ctrl+C            - Quit

Modes:
  fixed     - The target stays the same all game
  changing  - A new target after every clear

Examples:
  sumfall play
  sumfall play --difficulty nightmare --mode changing
  sumfall play --seed 42
  sumfall play --resume`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty tag (see 'sumfall list')")
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Target mode: fixed or changing")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().BoolVar(&flagResume, "resume", false, "Continue the saved game")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	opts := tui.PlayOptions{
		Difficulty: cfg.DefaultDifficulty,
		Mode:       sumfall.Mode(cfg.DefaultMode),
		Seed:       flagSeed,
	}

	if flagDifficulty != "" {
		if _, ok := cfg.Difficulty(flagDifficulty); !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
			fmt.Fprintln(os.Stderr, "Run 'sumfall list' to see available difficulties.")
			os.Exit(1)
		}
		opts.Difficulty = flagDifficulty
	}

	if flagMode != "" {
		mode, err := sumfall.ParseMode(flagMode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts.Mode = mode
	}

	if flagResume {
		snap, ok := loadSavedGame()
		if !ok {
			fmt.Fprintln(os.Stderr, "No saved game to resume.")
			os.Exit(1)
		}
		opts.Resume = &snap
	}

	runApp(&opts)
}

// loadSavedGame takes the local player's saved game out of the database.
func loadSavedGame() (sumfall.Snapshot, bool) {
	logger, closeLog := newLogger("sumfall")
	defer closeLog()

	store := openStore()
	defer store.Close()

	slot := storage.NewSaveSlot(store, storage.SaveGameKey, logger)
	return slot.Load()
}
