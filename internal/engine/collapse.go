package engine

// Collapse slides and merges the tiles of one sequence toward its head.
// Returns true if any cell changed.
func (g *Grid) Collapse(seq Sequence) bool {
	return g.collapse(seq, false)
}

// WouldChange reports whether Collapse would modify the sequence, without touching the grid.
func (g *Grid) WouldChange(seq Sequence) bool {
	return g.collapse(seq, true)
}

// collapse runs the two-pointer compaction. l is the slot the next tile settles into,
// r scans for the next tile. In dry-run mode it returns at the first mutation it would make.
func (g *Grid) collapse(seq Sequence, dryRun bool) bool {
	changed := false
	l := 0
	for r := 1; r < len(seq); r++ {
		rv := g.cells[seq[r]]
		if rv == 0 {
			continue
		}

		lv := g.cells[seq[l]]
		switch {
		case lv == 0:
			// Slide into the empty slot. l stays put: the moved tile may still merge
			// with the next tile found by r.
			if dryRun {
				return true
			}
			g.cells[seq[l]] = rv
			g.cells[seq[r]] = 0
			changed = true
		case lv == rv:
			if dryRun {
				return true
			}
			g.cells[seq[l]] = lv * 2
			g.cells[seq[r]] = 0
			changed = true
			// Merged cell is final for this pass
			l++
			r = l
		default:
			// Wall: l cannot absorb r, move on
			l++
			r = l
		}
	}
	return changed
}

// HasAnyMove reports whether at least one sequence of any direction would change.
func (g *Grid) HasAnyMove(set *SequenceSet) bool {
	for _, d := range Directions {
		if g.CanMove(set, d) {
			return true
		}
	}
	return false
}

// CanMove reports whether a move in direction d would change the grid.
func (g *Grid) CanMove(set *SequenceSet, d Direction) bool {
	for _, seq := range set.For(d) {
		if g.WouldChange(seq) {
			return true
		}
	}
	return false
}
