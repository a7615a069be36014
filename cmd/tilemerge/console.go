package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilemerge/internal/engine"
	"github.com/vovakirdan/tilemerge/internal/platform/console"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Play in raw console mode",
	Long: `Play with single key presses, printing the board as plain numbers after
every move.

Controls:
  W/A/S/D or arrows  - Up/Left/Down/Right
  R                  - New game (after game over)
  Q / Ctrl+C         - Quit

When stdin is not a terminal the keys are read from it as-is, so moves can be
piped in:
  echo adws | tilemerge console --seed 1`,
	Args: cobra.NoArgs,
	RunE: runConsole,
}

func runConsole(_ *cobra.Command, _ []string) error {
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

	restore, raw, err := console.MakeRaw(os.Stdin)
	if err != nil {
		return err
	}
	defer restore()

	opts := console.Options{
		CellWidth: cfg.Render.CellWidth,
		Logger:    logger,
	}
	if raw {
		opts.Newline = "\r\n"
	}

	logger.Debug("console started", "width", cfg.Board.Width, "height", cfg.Board.Height, "raw", raw)
	return console.New(game, os.Stdin, os.Stdout, opts).Run()
}
