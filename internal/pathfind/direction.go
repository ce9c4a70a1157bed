package pathfind

import (
	"errors"
	"fmt"
)

// Direction is a cardinal movement direction.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// ErrInvalidPath reports a path whose first step is not orthogonally
// adjacent to its start. It always indicates a bug in path construction.
var ErrInvalidPath = errors.New("pathfind: invalid path")

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the column and row offset of one step in d.
func (d Direction) Delta() (dc, dr int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction. None is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

// DirectionTo returns the direction of the first step of path from start.
// A nil or empty path yields None; the caller decides the fallback.
func DirectionTo(start Cell, path []Cell) (Direction, error) {
	if len(path) == 0 {
		return None, nil
	}

	next := path[0]
	if start.Manhattan(next) != 1 {
		return None, fmt.Errorf("%w: step %s is not adjacent to start %s", ErrInvalidPath, next, start)
	}

	switch {
	case next.Col > start.Col:
		return Right, nil
	case next.Col < start.Col:
		return Left, nil
	case next.Row > start.Row:
		return Down, nil
	default:
		return Up, nil
	}
}
