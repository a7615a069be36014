package engine

import "fmt"

// Grid is a width x height board stored row-major: cell (col, row) lives at row*width + col.
// Zero marks an empty cell, any positive value is a tile.
type Grid struct {
	width  int
	height int
	cells  []int
}

// NewGrid creates an empty grid.
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]int, width*height),
	}, nil
}

// GridFromCells creates a grid holding a copy of cells.
func GridFromCells(width, height int, cells []int) (*Grid, error) {
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	if len(cells) != len(g.cells) {
		return nil, fmt.Errorf("%w: got %d cells, want %d", ErrInvalidGrid, len(cells), len(g.cells))
	}
	for i, v := range cells {
		if v < 0 {
			return nil, fmt.Errorf("%w: negative value %d at index %d", ErrInvalidGrid, v, i)
		}
	}
	copy(g.cells, cells)
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Cell returns the value at a flat index.
func (g *Grid) Cell(i int) int { return g.cells[i] }

// Set stores a value at a flat index.
func (g *Grid) Set(i, v int) { g.cells[i] = v }

// At returns the value at column x, row y.
func (g *Grid) At(x, y int) int { return g.cells[y*g.width+x] }

// Cells returns a copy of the flat cell slice.
func (g *Grid) Cells() []int {
	out := make([]int, len(g.cells))
	copy(out, g.cells)
	return out
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{
		width:  g.width,
		height: g.height,
		cells:  g.Cells(),
	}
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = 0
	}
}

// EmptyCells returns the flat indices of all empty cells in increasing order.
func (g *Grid) EmptyCells() []int {
	var empty []int
	for i, v := range g.cells {
		if v == 0 {
			empty = append(empty, i)
		}
	}
	return empty
}

// MaxTile returns the maximum tile value on the board.
func (g *Grid) MaxTile() int {
	maxVal := 0
	for _, v := range g.cells {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}
