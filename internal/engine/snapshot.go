package engine

// Snapshot is a read-only copy of the board handed to renderers.
type Snapshot struct {
	Width   int
	Height  int
	Cells   []int // Row-major, len == Width*Height
	State   State
	Moves   int // Moves that changed the board
	MaxTile int // Highest tile on board
}

// Snapshot returns the current board state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Width:   g.cfg.Width,
		Height:  g.cfg.Height,
		Cells:   g.grid.Cells(),
		State:   g.state,
		Moves:   g.moves,
		MaxTile: g.grid.MaxTile(),
	}
}

// GameOver reports whether the snapshot was taken in the terminal state.
func (s Snapshot) GameOver() bool {
	return s.State == StateGameOver
}

// Row returns a copy of row y.
func (s Snapshot) Row(y int) []int {
	row := make([]int, s.Width)
	copy(row, s.Cells[y*s.Width:(y+1)*s.Width])
	return row
}
