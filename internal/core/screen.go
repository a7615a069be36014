package core

import (
	"strings"
)

// Screen is a fixed-size grid of runes that render.Draw paints the board onto.
// The TUI styles its String output; nothing here knows about terminals.
type Screen struct {
	width  int
	height int
	cells  [][]rune
}

// NewScreen returns a blank width x height screen.
func NewScreen(width, height int) *Screen {
	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = make([]rune, width)
	}
	s := &Screen{width: width, height: height, cells: cells}
	s.Clear()
	return s
}

func (s *Screen) Width() int  { return s.width }
func (s *Screen) Height() int { return s.height }

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for _, row := range s.cells {
		for x := range row {
			row[x] = ' '
		}
	}
}

// Set writes r at column x, row y. Writes off the screen are dropped.
func (s *Screen) Set(x, y int, r rune) {
	if s.inside(x, y) {
		s.cells[y][x] = r
	}
}

// Get reads the rune at column x, row y, or a space off the screen.
func (s *Screen) Get(x, y int) rune {
	if !s.inside(x, y) {
		return ' '
	}
	return s.cells[y][x]
}

// DrawText writes text left to right from (x, y), one rune per column.
func (s *Screen) DrawText(x, y int, text string) {
	col := x
	for _, r := range text {
		s.Set(col, y, r)
		col++
	}
}

// DrawTextCentered writes text on row y, centred across the full width.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawText((s.width-len([]rune(text)))/2, y, text)
}

// DrawBox outlines r with single-line box runes. The outline sits on r's
// outermost cells.
func (s *Screen) DrawBox(r Rect) {
	left, top := r.X, r.Y
	right, bottom := r.Right()-1, r.Bottom()-1

	for x := left + 1; x < right; x++ {
		s.Set(x, top, '─')
		s.Set(x, bottom, '─')
	}
	for y := top + 1; y < bottom; y++ {
		s.Set(left, y, '│')
		s.Set(right, y, '│')
	}
	s.Set(left, top, '┌')
	s.Set(right, top, '┐')
	s.Set(left, bottom, '└')
	s.Set(right, bottom, '┘')
}

// String joins the rows with newlines, without a trailing one.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = string(s.cells[y])
	}
	return strings.Join(rows, "\n")
}

// Row returns row y as a string; rows off the screen come back blank.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	return string(s.cells[y])
}
