package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilemerge/internal/engine"
	"github.com/vovakirdan/tilemerge/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a full-screen terminal UI",
	Long: `Start a game in a full-screen terminal UI.

Controls:
  Arrows / WASD / HJKL  - Slide tiles
  R                     - New game (after game over)
  ?                     - Toggle help
  Q / Ctrl+C            - Quit

Examples:
  tilemerge play
  tilemerge play --width 6 --height 4 --seed 7`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, err := newLogger("tilemerge")
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	game, err := engine.New(cfg.EngineConfig(), newRand(cfg.Seed))
	if err != nil {
		return err
	}

	if err := tui.Run(game, cfg.Render.CellWidth); err != nil {
		logger.Error("terminal UI failed", "error", err)
		return err
	}
	return nil
}
