package engine

import "fmt"

// Default spawn parameters.
var (
	// DefaultSpawnPool gives the base tile 4-in-5 odds.
	DefaultSpawnPool = []int{2, 2, 2, 2, 4}

	// DefaultInitialPool guarantees base tiles on a fresh board.
	DefaultInitialPool = []int{2}
)

// DefaultInitialTiles is how many tiles a new game starts with.
const DefaultInitialTiles = 2

// Rand is the source of randomness used for spawning. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// ValidatePool checks that a spawn pool is non-empty and holds only positive values.
func ValidatePool(pool []int) error {
	if len(pool) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidSpawnPool)
	}
	for _, v := range pool {
		if v <= 0 {
			return fmt.Errorf("%w: value %d is not positive", ErrInvalidSpawnPool, v)
		}
	}
	return nil
}

// Spawn places one tile drawn uniformly from pool into a uniformly chosen empty cell.
// If the board is full nothing is placed and the result reports whether any move remains.
func Spawn(g *Grid, set *SequenceSet, pool []int, rng Rand) bool {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return g.HasAnyMove(set)
	}

	cell := empty[rng.Intn(len(empty))]
	g.cells[cell] = pool[rng.Intn(len(pool))]
	return true
}
