package engine

// Sequence is an ordered list of flat cell indices along one row or column.
// Tiles slide toward index 0 of the sequence.
type Sequence []int

// SequenceSet holds the precomputed sequences for every direction of one board size.
// It depends only on the dimensions and is never mutated after construction.
type SequenceSet struct {
	width  int
	height int
	byDir  [directionCount][]Sequence
}

// NewSequenceSet precomputes the sequences of all four directions.
func NewSequenceSet(width, height int) *SequenceSet {
	s := &SequenceSet{width: width, height: height}
	for _, d := range Directions {
		s.byDir[d] = BuildSequences(width, height, d)
	}
	return s
}

// For returns the sequences of one direction, or nil for an invalid one.
// Callers must not modify them.
func (s *SequenceSet) For(d Direction) []Sequence {
	if !d.Valid() {
		return nil
	}
	return s.byDir[d]
}

// Width returns the board width the set was built for.
func (s *SequenceSet) Width() int { return s.width }

// Height returns the board height the set was built for.
func (s *SequenceSet) Height() int { return s.height }

// BuildSequences returns one sequence per row (left, right) or per column (up, down),
// ordered so that the head of each sequence is the cell tiles slide toward.
func BuildSequences(width, height int, d Direction) []Sequence {
	switch d {
	case Left, Right:
		seqs := make([]Sequence, 0, height)
		for row := 0; row < height; row++ {
			seq := make(Sequence, 0, width)
			for col := 0; col < width; col++ {
				seq = append(seq, row*width+col)
			}
			if d == Right {
				reverse(seq)
			}
			seqs = append(seqs, seq)
		}
		return seqs
	case Up, Down:
		seqs := make([]Sequence, 0, width)
		for col := 0; col < width; col++ {
			seq := make(Sequence, 0, height)
			for row := 0; row < height; row++ {
				seq = append(seq, row*width+col)
			}
			if d == Down {
				reverse(seq)
			}
			seqs = append(seqs, seq)
		}
		return seqs
	default:
		return nil
	}
}

// reverse flips a sequence in place.
func reverse(seq Sequence) {
	for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
		seq[i], seq[j] = seq[j], seq[i]
	}
}
