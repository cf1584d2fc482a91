// Package grid poses path finding through a 2D maze of integer cells as a
// search problem.
//
// Cells with value < LandThreshold are walls; entering any other cell costs
// its value, so the same maze serves unit-cost search (all ones) and
// weighted search. Moves follow Conn4 or Conn8 connectivity. Problems are
// reversible: predecessors step out of a cell in every direction and
// Invert flips the recorded direction.
package grid

import (
	"fmt"

	"github.com/katalvlaran/blindsearch/core"
	"github.com/katalvlaran/blindsearch/search"
)

// Problem is an immutable grid maze with a start and a goal cell.
// CellValues[y][x] holds the input value of (x, y).
type Problem struct {
	Width, Height int
	CellValues    [][]int
	Conn          Connectivity
	LandThreshold int
	Start, Goal   Cell
	directions    []Direction
}

var (
	_ search.Reversible[Cell, Direction] = (*Problem)(nil)
	_ search.Inverter[Cell, Direction]   = (*Problem)(nil)
)

// New constructs a Problem from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
//
// Returns ErrEmptyGrid, ErrNonRectangular, ErrBadThreshold, and
// ErrOutOfBounds or ErrWall (wrapped with the offending cell) for start
// and goal.
// Complexity: O(W×H) time and memory.
func New(values [][]int, start, goal Cell, opts Options) (*Problem, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if opts.LandThreshold < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadThreshold, opts.LandThreshold)
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	dirs := []Direction{N, E, S, W}
	if opts.Conn == Conn8 {
		dirs = []Direction{N, NE, E, SE, S, SW, W, NW}
	}
	p := &Problem{
		Width:         w,
		Height:        h,
		CellValues:    cells,
		Conn:          opts.Conn,
		LandThreshold: opts.LandThreshold,
		Start:         start,
		Goal:          goal,
		directions:    dirs,
	}
	for _, c := range []Cell{start, goal} {
		if !p.InBounds(c) {
			return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, w, h)
		}
		if !p.Passable(c) {
			return nil, fmt.Errorf("%w: %v has value %d", ErrWall, c, p.Value(c))
		}
	}

	return p, nil
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (p *Problem) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < p.Width && c.Y >= 0 && c.Y < p.Height
}

// Value returns the input value of an in-bounds cell.
func (p *Problem) Value(c Cell) int {
	return p.CellValues[c.Y][c.X]
}

// Passable reports whether c is in bounds and not a wall.
func (p *Problem) Passable(c Cell) bool {
	return p.InBounds(c) && p.Value(c) >= p.LandThreshold
}

// Directions returns the moves allowed by the connectivity, clockwise from N.
func (p *Problem) Directions() []Direction {
	return append([]Direction(nil), p.directions...)
}

// Move returns the neighbor of c in direction d and whether it can be entered.
func (p *Problem) Move(c Cell, d Direction) (Cell, bool) {
	dx, dy := d.Offset()
	next := Cell{X: c.X + dx, Y: c.Y + dy}

	return next, p.Passable(next)
}

func (p *Problem) InitialState() Cell { return p.Start }

func (p *Problem) IsGoal(c Cell) bool { return c == p.Goal }

// Successors moves into every passable neighbor; the step costs the value
// of the entered cell.
func (p *Problem) Successors(c Cell) []search.Step[Cell, Direction] {
	steps := make([]search.Step[Cell, Direction], 0, len(p.directions))
	for _, d := range p.directions {
		next, ok := p.Move(c, d)
		if !ok {
			continue
		}
		steps = append(steps, search.Step[Cell, Direction]{Action: d, State: next, Cost: float64(p.Value(next))})
	}

	return steps
}

// Predecessors lists every passable neighbor from which c can be entered.
// The reverse action is the direction from c back to that neighbor and the
// cost is the value of c.
func (p *Problem) Predecessors(c Cell) ([]search.Step[Cell, Direction], error) {
	if !p.Passable(c) {
		return nil, nil
	}
	cost := float64(p.Value(c))
	steps := make([]search.Step[Cell, Direction], 0, len(p.directions))
	for _, d := range p.directions {
		prior, ok := p.Move(c, d)
		if !ok {
			continue
		}
		steps = append(steps, search.Step[Cell, Direction]{Action: d, State: prior, Cost: cost})
	}

	return steps, nil
}

// Invert turns the reverse direction next→prior into prior→next.
func (p *Problem) Invert(reverse Direction, _, _ Cell) Direction {
	return reverse.Opposite()
}

// ToCoreGraph converts the passable cells into a weighted, directed
// *core.Graph. Each cell becomes a vertex "x,y" and every allowed move
// becomes an edge weighted with the value of the entered cell.
// Complexity: O(W×H×d) time and memory (d = 4 or 8).
func (p *Problem) ToCoreGraph() *core.Graph {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			c := Cell{X: x, Y: y}
			if !p.Passable(c) {
				continue
			}
			_ = g.AddVertex(c.String())
			for _, st := range p.Successors(c) {
				_, _ = g.AddEdge(c.String(), st.State.String(), st.Cost)
			}
		}
	}

	return g
}

// Render draws the grid with '#' for walls, digits (or '+' above 9) for
// passable cells and the cells of path marked with '*'. S and G mark the
// start and goal.
func (p *Problem) Render(path []Direction) string {
	onPath := make(map[Cell]bool, len(path))
	cur := p.Start
	for _, d := range path {
		dx, dy := d.Offset()
		cur = Cell{X: cur.X + dx, Y: cur.Y + dy}
		onPath[cur] = true
	}
	buf := make([]byte, 0, (p.Width+1)*p.Height)
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			c := Cell{X: x, Y: y}
			v := p.Value(c)
			switch {
			case c == p.Start:
				buf = append(buf, 'S')
			case c == p.Goal:
				buf = append(buf, 'G')
			case onPath[c]:
				buf = append(buf, '*')
			case v < p.LandThreshold:
				buf = append(buf, '#')
			case v > 9:
				buf = append(buf, '+')
			default:
				buf = append(buf, byte('0'+v))
			}
		}
		buf = append(buf, '\n')
	}

	return string(buf)
}
