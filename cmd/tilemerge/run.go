package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilemerge/internal/engine"
	"github.com/vovakirdan/tilemerge/internal/platform/console"
)

var flagBoard string

var runCmd = &cobra.Command{
	Use:   "run <moves...>",
	Short: "Apply a scripted list of moves",
	Long: `Apply moves in order and print the board after each one. Moves are
left, right, up, down or their first letters. Stops early on game over.

--board sets the starting cells (row-major, comma separated) instead of
spawning the initial tiles.

Examples:
  tilemerge run l u r d --seed 3
  tilemerge run left --width 4 --height 1 --board 2,2,0,0`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagBoard, "board", "", "Starting cells, comma separated, row-major")
}

func runRun(_ *cobra.Command, args []string) error {
	logger, err := newLogger("tilemerge")
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dirs, err := engine.ParseDirections(args)
	if err != nil {
		return err
	}

	var game *engine.Game
	if flagBoard != "" {
		cells, parseErr := parseCells(flagBoard)
		if parseErr != nil {
			return parseErr
		}
		game, err = engine.Restore(cfg.EngineConfig(), cells, newRand(cfg.Seed))
	} else {
		game, err = engine.New(cfg.EngineConfig(), newRand(cfg.Seed))
	}
	if err != nil {
		return err
	}

	snap, err := console.RunScript(os.Stdout, game, dirs, cfg.Render.CellWidth)
	if err != nil {
		return err
	}
	logger.Debug("script finished", "moves", snap.Moves, "max_tile", snap.MaxTile, "game_over", snap.GameOver())
	return nil
}

// parseCells parses "2,0,4,..." into cell values.
func parseCells(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	cells := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid --board cell %q: %w", p, err)
		}
		cells = append(cells, v)
	}
	return cells, nil
}
