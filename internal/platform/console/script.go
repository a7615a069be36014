package console

import (
	"fmt"
	"io"

	"github.com/vovakirdan/tilemerge/internal/engine"
	"github.com/vovakirdan/tilemerge/internal/render"
)

// RunScript applies dirs in order, printing the board after each move.
// It stops early once the game is over and returns the final snapshot.
func RunScript(w io.Writer, game *engine.Game, dirs []engine.Direction, cellWidth int) (engine.Snapshot, error) {
	snap := game.Snapshot()
	if _, err := fmt.Fprintf(w, "start\n%s\n", render.Text(snap, cellWidth)); err != nil {
		return snap, err
	}

	for i, dir := range dirs {
		if snap.GameOver() {
			break
		}
		result, err := game.ApplyMove(dir)
		if err != nil {
			return snap, fmt.Errorf("move %d: %w", i+1, err)
		}
		snap = result.Snapshot

		marker := ""
		if !result.Updated {
			marker = " (no change)"
		}
		if _, err := fmt.Fprintf(w, "\n%d: %s%s\n%s\n", i+1, dir, marker, render.Text(snap, cellWidth)); err != nil {
			return snap, err
		}
	}

	if snap.GameOver() {
		if _, err := fmt.Fprintln(w, render.GameOverText); err != nil {
			return snap, err
		}
	}
	return snap, nil
}
