// tilemerge is a sliding-tile merge game for the terminal.
//
// Usage:
//
//	tilemerge play               - Play in a full-screen terminal UI
//	tilemerge console            - Play in raw console mode (w/a/s/d, Ctrl+C quits)
//	tilemerge run <moves...>     - Apply a scripted list of moves and print each board
//	tilemerge serve              - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - YAML config (default search: ~/.tilemerge/config.yaml, ./configs/tilemerge.yaml)
//	--width, --height   - Board size (overrides config)
//	--seed <value>      - RNG seed for reproducible spawns (0 = random based on time)
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilemerge/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagWidth    int
	flagHeight   int
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilemerge",
	Short: "tilemerge - slide and merge tiles in your terminal",
	Long: `tilemerge is a single-player sliding-tile merge game.

Every move slides all tiles toward one edge; equal neighbours merge into
their sum. A new tile appears after each move that changed the board, and
the game ends when no direction can change it any more.

Available commands:
  play     - Full-screen terminal UI
  console  - Raw console mode with a plain text board
  run      - Apply scripted moves
  serve    - Start SSH server for remote play

Examples:
  tilemerge play
  tilemerge play --width 5 --height 5
  tilemerge console --seed 42
  tilemerge run left up right --board 2,2,0,0 --width 4 --height 1
  tilemerge serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "Board width (0 = from config)")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", 0, "Board height (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger creates the stderr logger shared by all commands.
func newLogger(prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// loadConfig loads the YAML config and applies command-line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagWidth != 0 {
		cfg.Board.Width = flagWidth
	}
	if flagHeight != 0 {
		cfg.Board.Height = flagHeight
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newRand returns the spawn RNG for seed, using the clock when seed is 0.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
