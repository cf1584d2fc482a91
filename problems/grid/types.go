package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a start or goal cell outside the grid.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
	// ErrWall indicates a start or goal cell that cannot be entered.
	ErrWall = errors.New("grid: cell is a wall")
	// ErrBadThreshold indicates a LandThreshold that would admit negative step costs.
	ErrBadThreshold = errors.New("grid: land threshold must be non-negative")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell is a grid coordinate; it is the state type of a Problem.
type Cell struct {
	X, Y int
}

// String renders the cell as "x,y".
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Direction is a single move between neighboring cells; it is the action
// type of a Problem. Directions are ordered clockwise from North.
type Direction int

// Compass directions. Y grows southwards.
const (
	N Direction = iota
	NE
	E
	SE
	S
	SW
	W
	NW
)

var (
	directionNames = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	offsets        = [...][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	return (d + 4) % 8
}

// Offset returns the (dx, dy) step of d.
func (d Direction) Offset() (dx, dy int) {
	o := offsets[d]
	return o[0], o[1]
}

func (d Direction) String() string {
	if d < N || d > NW {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Options contains tunable parameters for a grid maze.
type Options struct {
	// LandThreshold specifies the minimum cell value that can be entered.
	// Smaller values are walls.
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultOptions returns Options with default settings:
// LandThreshold=1 (values ≥1 are passable), Conn=Conn4.
func DefaultOptions() Options {
	return Options{
		LandThreshold: 1,
		Conn:          Conn4,
	}
}
