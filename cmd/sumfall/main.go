// sumfall is a falling-number puzzle for the terminal: steer each falling
// digit so that horizontal or vertical runs add up to the target sum.
//
// Usage:
//
//	sumfall                      - Start the menu
//	sumfall play                 - Start a game directly
//	sumfall list                 - List difficulties
//	sumfall profile              - Show best points and achievements
//	sumfall scores <difficulty>  - Show top scores for a difficulty
//	sumfall serve                - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>    - Custom YAML config
//	--db <path>        - Set database path (default: ~/.sumfall/sumfall.db)
//	--log-file <path>  - Write logs to a file (local play only)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sumfall/internal/config"
	"github.com/vovakirdan/sumfall/internal/platform/tui"
	"github.com/vovakirdan/sumfall/internal/storage"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sumfall",
	Short: "Sumfall - a falling-number sum puzzle in your terminal",
	Long: `Sumfall drops numbered tiles onto a 6x6 board. Runs of adjacent
tiles, in a row or a column, that add up to the target are cleared.

Available commands:
  play     - Start a game directly
  list     - Show difficulties and their speeds
  profile  - Show best points and achievements
  scores   - View top scores for a difficulty
  serve    - Start SSH server for remote play

Examples:
  sumfall
  sumfall play --difficulty hard --mode changing
  sumfall play --resume
  sumfall scores medium
  sumfall serve --ssh :2222`,
	Run: runMenu,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sumfall/sumfall.db", "Path to database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	runApp(nil)
}

// loadConfig loads the game config or exits.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger returns the logger for local play. The terminal belongs to the
// game, so logs go to --log-file or nowhere.
func newLogger(prefix string) (*log.Logger, func()) {
	var w io.Writer = io.Discard
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		} else {
			w = f
			closer = func() { f.Close() }
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer
}

// runApp opens storage and runs the TUI until the player quits.
func runApp(start *tui.PlayOptions) {
	cfg := loadConfig()
	logger, closeLog := newLogger("sumfall")
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		// Continue without storage - progress lives for this run only
		store = nil
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	env := tui.NewEnv(cfg, store, "", logger)
	runErr := tui.Run(env, start, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openStore opens the database or exits.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return store
}

// difficultyLabel returns the display label for a tag.
func difficultyLabel(cfg config.Config, tag string) string {
	if d, ok := cfg.Difficulty(tag); ok && d.Label != "" {
		return d.Label
	}
	return tag
}
