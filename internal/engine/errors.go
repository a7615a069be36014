package engine

import "errors"

var (
	// ErrInvalidDimensions is returned when a board is requested with width or height below 1.
	ErrInvalidDimensions = errors.New("engine: invalid dimensions")

	// ErrUnknownDirection is returned for a direction outside Left, Right, Up and Down.
	ErrUnknownDirection = errors.New("engine: unknown direction")

	// ErrInvalidGrid is returned when explicit cells do not fit the board.
	ErrInvalidGrid = errors.New("engine: invalid grid")

	// ErrInvalidSpawnPool is returned for an empty pool or a pool with non-positive values.
	ErrInvalidSpawnPool = errors.New("engine: invalid spawn pool")
)
