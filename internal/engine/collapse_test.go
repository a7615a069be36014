package engine

import (
	"math/rand"
	"reflect"
	"testing"
)

// rowGrid builds a width x 1 grid for sequence tests.
func rowGrid(t *testing.T, cells ...int) *Grid {
	t.Helper()
	g, err := GridFromCells(len(cells), 1, cells)
	if err != nil {
		t.Fatalf("GridFromCells(%v): %v", cells, err)
	}
	return g
}

func TestCollapseRow(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
		changed  bool
	}{
		{"simple merge", []int{2, 2, 0, 0}, []int{4, 0, 0, 0}, true},
		{"merge with trailing tile", []int{2, 2, 2, 0}, []int{4, 2, 0, 0}, true},
		{"double merge", []int{2, 2, 2, 2}, []int{4, 4, 0, 0}, true},
		{"no merge possible", []int{2, 4, 8, 16}, []int{2, 4, 8, 16}, false},
		{"slide with gap", []int{0, 0, 2, 2}, []int{4, 0, 0, 0}, true},
		{"slide with multiple gaps", []int{2, 0, 0, 2}, []int{4, 0, 0, 0}, true},
		{"gap then merge then wall", []int{2, 0, 2, 4}, []int{4, 4, 0, 0}, true},
		{"alternating gaps", []int{0, 2, 0, 2}, []int{4, 0, 0, 0}, true},
		{"slide behind wall", []int{8, 0, 4, 4}, []int{8, 8, 0, 0}, true},
		{"already settled", []int{4, 2, 0, 0}, []int{4, 2, 0, 0}, false},
		{"empty row", []int{0, 0, 0, 0}, []int{0, 0, 0, 0}, false},
		{"single tile", []int{0, 4, 0, 0}, []int{4, 0, 0, 0}, true},
		{"single cell", []int{8}, []int{8}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := rowGrid(t, tt.input...)
			seq := BuildSequences(len(tt.input), 1, Left)[0]

			changed := g.Collapse(seq)
			if got := g.Cells(); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Collapse(%v) = %v, want %v", tt.input, got, tt.expected)
			}
			if changed != tt.changed {
				t.Errorf("Collapse(%v) changed = %v, want %v", tt.input, changed, tt.changed)
			}
		})
	}
}

func TestCollapseRight(t *testing.T) {
	g := rowGrid(t, 2, 2, 0, 4)
	seq := BuildSequences(4, 1, Right)[0]

	g.Collapse(seq)

	expected := []int{0, 0, 4, 4}
	if got := g.Cells(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Collapse right = %v, want %v", got, expected)
	}
}

func TestOneMergePerTilePerCollapse(t *testing.T) {
	tests := []struct {
		input    []int
		expected []int
	}{
		// [4,4,4,4] becomes [8,8,0,0], not [16,0,0,0]
		{[]int{4, 4, 4, 4}, []int{8, 8, 0, 0}},
		// The merged 4 does not absorb the slid 4
		{[]int{2, 2, 4, 0}, []int{4, 4, 0, 0}},
		{[]int{4, 2, 2, 0}, []int{4, 4, 0, 0}},
	}

	for _, tt := range tests {
		g := rowGrid(t, tt.input...)
		g.Collapse(BuildSequences(len(tt.input), 1, Left)[0])
		if got := g.Cells(); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("Collapse(%v) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestWouldChangeDoesNotMutate(t *testing.T) {
	g := rowGrid(t, 0, 2, 2, 4)
	seq := BuildSequences(4, 1, Left)[0]

	if !g.WouldChange(seq) {
		t.Error("WouldChange should report a pending slide")
	}
	expected := []int{0, 2, 2, 4}
	if got := g.Cells(); !reflect.DeepEqual(got, expected) {
		t.Errorf("WouldChange mutated grid: %v, want %v", got, expected)
	}
}

// randomRow returns a row of empty cells and small tiles.
func randomRow(rng *rand.Rand, n int) []int {
	values := []int{0, 0, 2, 4, 8}
	row := make([]int, n)
	for i := range row {
		row[i] = values[rng.Intn(len(values))]
	}
	return row
}

func sum(cells []int) int {
	total := 0
	for _, v := range cells {
		total += v
	}
	return total
}

func countTiles(cells []int) int {
	n := 0
	for _, v := range cells {
		if v != 0 {
			n++
		}
	}
	return n
}

func TestCollapseProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 2000; i++ {
		n := 1 + rng.Intn(6)
		input := randomRow(rng, n)
		seq := BuildSequences(n, 1, Left)[0]

		g := rowGrid(t, input...)
		predicted := g.WouldChange(seq)
		changed := g.Collapse(seq)
		out := g.Cells()

		// Oracle and collapse agree
		if predicted != changed {
			t.Fatalf("%v: WouldChange = %v, Collapse = %v", input, predicted, changed)
		}
		if changed != !reflect.DeepEqual(input, out) {
			t.Fatalf("%v -> %v: changed = %v does not match cell diff", input, out, changed)
		}

		// Merges only double, so the total is conserved
		if sum(input) != sum(out) {
			t.Fatalf("%v -> %v: sum %d != %d", input, out, sum(input), sum(out))
		}

		// Tiles are packed at the head
		seenEmpty := false
		for _, v := range out {
			if v == 0 {
				seenEmpty = true
			} else if seenEmpty {
				t.Fatalf("%v -> %v: tile after gap", input, out)
			}
		}

		// Each merge removes exactly one tile, and a pass merges at most n/2 times
		merges := countTiles(input) - countTiles(out)
		if merges < 0 || merges > n/2 {
			t.Fatalf("%v -> %v: %d merges", input, out, merges)
		}
	}
}

func TestCollapseNoMergeIsPureRepositioning(t *testing.T) {
	input := []int{0, 2, 0, 4, 0, 8}
	g := rowGrid(t, input...)
	g.Collapse(BuildSequences(len(input), 1, Left)[0])

	expected := []int{2, 4, 8, 0, 0, 0}
	if got := g.Cells(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Collapse(%v) = %v, want %v", input, got, expected)
	}
	if countTiles(input) != countTiles(expected) {
		t.Errorf("tile count changed without merges")
	}
}

func TestCollapseSettledIsIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 500; i++ {
		input := randomRow(rng, 5)
		seq := BuildSequences(5, 1, Left)[0]
		g := rowGrid(t, input...)

		// Collapse until nothing moves
		for g.Collapse(seq) {
		}
		settled := g.Cells()

		if g.Collapse(seq) {
			t.Fatalf("%v: settled row %v changed again", input, settled)
		}
		if got := g.Cells(); !reflect.DeepEqual(got, settled) {
			t.Fatalf("%v: settled row %v became %v", input, settled, got)
		}
	}
}

func TestScenarioUpMergesPerColumn(t *testing.T) {
	g, err := GridFromCells(2, 2, []int{2, 2, 2, 2})
	if err != nil {
		t.Fatal(err)
	}
	set := NewSequenceSet(2, 2)
	for _, seq := range set.For(Up) {
		g.Collapse(seq)
	}

	expected := []int{4, 4, 0, 0}
	if got := g.Cells(); !reflect.DeepEqual(got, expected) {
		t.Errorf("up on [2 2 2 2] = %v, want %v", got, expected)
	}
}

func TestHasAnyMove(t *testing.T) {
	set := NewSequenceSet(4, 4)

	tests := []struct {
		name     string
		cells    []int
		expected bool
	}{
		{
			name: "full board without equal neighbours",
			cells: []int{
				65536, 32768, 16384, 8192,
				4096, 2048, 1024, 512,
				256, 128, 64, 32,
				16, 8, 4, 2,
			},
			expected: false,
		},
		{
			name: "full board with horizontal merge",
			cells: []int{
				2, 2, 8, 16,
				32, 64, 128, 256,
				512, 1024, 2048, 4096,
				8192, 16384, 32768, 65536,
			},
			expected: true,
		},
		{
			name: "full board with vertical merge",
			cells: []int{
				2, 4, 8, 16,
				2, 64, 128, 256,
				512, 1024, 2048, 4096,
				8192, 16384, 32768, 65536,
			},
			expected: true,
		},
		{
			name: "board with empty cell",
			cells: []int{
				2, 4, 8, 16,
				32, 64, 128, 256,
				512, 1024, 0, 4096,
				8192, 16384, 32768, 65536,
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := GridFromCells(4, 4, tt.cells)
			if err != nil {
				t.Fatal(err)
			}
			if got := g.HasAnyMove(set); got != tt.expected {
				t.Errorf("HasAnyMove = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDecreasingBoardHasNoMoveInAnyDirection(t *testing.T) {
	g, err := GridFromCells(3, 3, []int{
		512, 256, 128,
		64, 32, 16,
		8, 4, 2,
	})
	if err != nil {
		t.Fatal(err)
	}
	set := NewSequenceSet(3, 3)

	for _, d := range Directions {
		if g.CanMove(set, d) {
			t.Errorf("CanMove(%v) = true on a locked board", d)
		}
	}
}

func TestCanMoveSingleDirection(t *testing.T) {
	// Tiles packed to the left: only a move right changes anything
	g, err := GridFromCells(3, 1, []int{2, 4, 0})
	if err != nil {
		t.Fatal(err)
	}
	set := NewSequenceSet(3, 1)

	expected := map[Direction]bool{Left: false, Right: true, Up: false, Down: false}
	for d, want := range expected {
		if got := g.CanMove(set, d); got != want {
			t.Errorf("CanMove(%v) = %v, want %v", d, got, want)
		}
	}
}

func TestCanMoveInvalidDirection(t *testing.T) {
	g, err := GridFromCells(3, 1, []int{2, 0, 2})
	if err != nil {
		t.Fatal(err)
	}
	set := NewSequenceSet(3, 1)

	for _, d := range []Direction{-1, 4, 9} {
		if g.CanMove(set, d) {
			t.Errorf("CanMove(%d) = true, want false", int(d))
		}
	}
	if !g.HasAnyMove(set) {
		t.Error("HasAnyMove = false, want true")
	}
}
