// Package render turns board snapshots into text.
package render

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tilemerge/internal/core"
	"github.com/vovakirdan/tilemerge/internal/engine"
)

// DefaultCellWidth is the column width of one cell, matching a "%5d" dump.
const DefaultCellWidth = 5

// GameOverText is shown once no move is left.
const GameOverText = "Game Over"

// Lines returns one string per board row with every cell right-aligned in cellWidth columns.
// Empty cells print as 0.
func Lines(snap engine.Snapshot, cellWidth int) []string {
	if cellWidth < 1 {
		cellWidth = DefaultCellWidth
	}

	lines := make([]string, 0, snap.Height)
	var sb strings.Builder
	for y := 0; y < snap.Height; y++ {
		sb.Reset()
		for _, v := range snap.Row(y) {
			fmt.Fprintf(&sb, "%*d", cellWidth, v)
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// Text renders the board as newline-separated rows.
func Text(snap engine.Snapshot, cellWidth int) string {
	return strings.Join(Lines(snap, cellWidth), "\n")
}

// BoardSize returns the screen size Draw needs: the rows inside a one-character box
// plus a status line below it.
func BoardSize(snap engine.Snapshot, cellWidth int) (w, h int) {
	if cellWidth < 1 {
		cellWidth = DefaultCellWidth
	}
	w = core.Max(snap.Width*cellWidth+2, len(GameOverText)+2)
	h = snap.Height + 3
	return w, h
}

// Draw renders the board into dst inside a box, with the game over notice below it.
// dst should be at least BoardSize large; anything outside is clipped.
func Draw(dst *core.Screen, snap engine.Snapshot, cellWidth int) {
	dst.Clear()

	lines := Lines(snap, cellWidth)
	boxW := 2
	if len(lines) > 0 {
		boxW += len(lines[0])
	}
	dst.DrawBox(core.NewRect(0, 0, boxW, snap.Height+2))

	for y, line := range lines {
		dst.DrawText(1, y+1, line)
	}

	if snap.GameOver() {
		dst.DrawTextCentered(snap.Height+2, GameOverText)
	}
}
