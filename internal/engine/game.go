package engine

import "fmt"

// State is the controller state between moves.
type State string

const (
	StateReady    State = "ready"
	StateGameOver State = "game_over"
)

// Config describes the board and spawn policy of a game.
type Config struct {
	Width        int
	Height       int
	SpawnPool    []int // Pool drawn from after every move that changed the board
	InitialPool  []int // Pool drawn from when seeding a fresh board
	InitialTiles int
}

// DefaultConfig returns a classic 4x4 configuration.
func DefaultConfig() Config {
	return Config{
		Width:        4,
		Height:       4,
		SpawnPool:    append([]int(nil), DefaultSpawnPool...),
		InitialPool:  append([]int(nil), DefaultInitialPool...),
		InitialTiles: DefaultInitialTiles,
	}
}

// Validate checks the configuration before a game is built from it.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	if err := ValidatePool(c.SpawnPool); err != nil {
		return fmt.Errorf("spawn pool: %w", err)
	}
	if err := ValidatePool(c.InitialPool); err != nil {
		return fmt.Errorf("initial pool: %w", err)
	}
	if c.InitialTiles < 0 {
		return fmt.Errorf("initial tiles: %d is negative", c.InitialTiles)
	}
	return nil
}

// Game owns the grid and its sequences and applies moves to them.
type Game struct {
	cfg   Config
	rng   Rand
	grid  *Grid
	seqs  *SequenceSet
	state State
	moves int
}

// NewGame creates a game with the default spawn policy and two base tiles placed.
func NewGame(width, height int, rng Rand) (*Game, error) {
	cfg := DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	return New(cfg, rng)
}

// New creates a game from cfg and seeds its initial tiles.
func New(cfg Config, rng Rand) (*Game, error) {
	g, err := newGame(cfg, rng)
	if err != nil {
		return nil, err
	}
	g.seed()
	return g, nil
}

// Restore creates a game around an explicit board. No tiles are spawned.
func Restore(cfg Config, cells []int, rng Rand) (*Game, error) {
	g, err := newGame(cfg, rng)
	if err != nil {
		return nil, err
	}
	grid, err := GridFromCells(cfg.Width, cfg.Height, cells)
	if err != nil {
		return nil, err
	}
	g.grid = grid
	g.updateState()
	return g, nil
}

func newGame(cfg Config, rng Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	cfg.SpawnPool = append([]int(nil), cfg.SpawnPool...)
	cfg.InitialPool = append([]int(nil), cfg.InitialPool...)

	return &Game{
		cfg:   cfg,
		rng:   rng,
		grid:  grid,
		seqs:  NewSequenceSet(cfg.Width, cfg.Height),
		state: StateReady,
	}, nil
}

// seed places the initial tiles on the current board.
func (g *Game) seed() {
	for i := 0; i < g.cfg.InitialTiles; i++ {
		Spawn(g.grid, g.seqs, g.cfg.InitialPool, g.rng)
	}
	g.updateState()
}

// Reset clears the board and places fresh initial tiles.
func (g *Game) Reset() {
	g.grid.Clear()
	g.moves = 0
	g.state = StateReady
	g.seed()
}

// MoveResult is returned by ApplyMove.
type MoveResult struct {
	Snapshot Snapshot
	Updated  bool // Whether the move changed the board (and a tile was spawned)
	GameOver bool
}

// ApplyMove slides the board in direction dir, spawns a tile if anything moved,
// and checks whether any move is left.
func (g *Game) ApplyMove(dir Direction) (MoveResult, error) {
	if !dir.Valid() {
		return MoveResult{}, fmt.Errorf("%w: %v", ErrUnknownDirection, dir)
	}

	updated := false
	for _, seq := range g.seqs.For(dir) {
		// Check against the pre-collapse state of this sequence
		if g.grid.WouldChange(seq) {
			updated = true
		}
		g.grid.Collapse(seq)
	}

	if updated {
		g.moves++
		Spawn(g.grid, g.seqs, g.cfg.SpawnPool, g.rng)
	}

	g.updateState()

	return MoveResult{
		Snapshot: g.Snapshot(),
		Updated:  updated,
		GameOver: g.state == StateGameOver,
	}, nil
}

// updateState enters StateGameOver once no direction can change the board.
func (g *Game) updateState() {
	if g.grid.HasAnyMove(g.seqs) {
		g.state = StateReady
	} else {
		g.state = StateGameOver
	}
}

// HasAnyMove reports whether any direction would change the board.
func (g *Game) HasAnyMove() bool {
	return g.grid.HasAnyMove(g.seqs)
}

// CanMove reports whether direction dir would change the board.
func (g *Game) CanMove(dir Direction) bool {
	if !dir.Valid() {
		return false
	}
	return g.grid.CanMove(g.seqs, dir)
}

// State returns the current controller state.
func (g *Game) State() State {
	return g.state
}

// GameOver reports whether the game reached its terminal state.
func (g *Game) GameOver() bool {
	return g.state == StateGameOver
}

// Width returns the board width.
func (g *Game) Width() int { return g.cfg.Width }

// Height returns the board height.
func (g *Game) Height() int { return g.cfg.Height }
