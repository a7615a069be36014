package engine

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// directionCount is the size of the closed direction set.
const directionCount = 4

// Directions lists every direction in dispatch order.
var Directions = [directionCount]Direction{Left, Right, Up, Down}

// Valid reports whether d is one of the four known directions.
func (d Direction) Valid() bool {
	return d >= Left && d <= Down
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts a name ("left") or a one-letter alias ("l") to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// ParseDirections parses a list of direction names, stopping at the first bad one.
func ParseDirections(names []string) ([]Direction, error) {
	dirs := make([]Direction, 0, len(names))
	for _, name := range names {
		d, err := ParseDirection(name)
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}
