// Package puzzle poses the 3×3 sliding-tile puzzle (8-puzzle) as a search
// problem. States are boards, actions move the blank one cell at unit cost.
package puzzle

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/blindsearch/search"
)

const (
	// Size is the side length of the board.
	Size = 3
	// Cells is the number of cells on the board.
	Cells = Size * Size
	// Blank marks the empty cell.
	Blank = 0
)

var (
	// ErrInvalidBoard indicates a board that is not a permutation of 0..8.
	ErrInvalidBoard = errors.New("puzzle: board must hold each tile 0..8 exactly once")
	// ErrUnsolvable indicates a start board of different parity from the goal.
	ErrUnsolvable = errors.New("puzzle: goal is unreachable from start")
)

// Board lists tiles row by row; Blank is the empty cell.
type Board [Cells]int8

// Goal returns the conventional solved board 1..8 followed by the blank.
func Goal() Board { return Board{1, 2, 3, 4, 5, 6, 7, 8, Blank} }

// Parse reads nine tiles from s. Digits 0-8 are tiles and '_' is the blank;
// spaces, commas and '|' separate cells and are ignored.
func Parse(s string) (Board, error) {
	var b Board
	n := 0
	for _, r := range s {
		var v int8
		switch {
		case r == ' ' || r == ',' || r == '|' || r == '\t' || r == '\n':
			continue
		case r == '_':
			v = Blank
		case r >= '0' && r <= '8':
			v = int8(r - '0')
		default:
			return Board{}, fmt.Errorf("%w: unexpected %q in %q", ErrInvalidBoard, r, s)
		}
		if n == Cells {
			return Board{}, fmt.Errorf("%w: more than %d tiles in %q", ErrInvalidBoard, Cells, s)
		}
		b[n] = v
		n++
	}
	if n != Cells {
		return Board{}, fmt.Errorf("%w: %d tiles in %q", ErrInvalidBoard, n, s)
	}
	if err := b.Validate(); err != nil {
		return Board{}, err
	}

	return b, nil
}

// Validate checks that b holds every tile exactly once.
func (b Board) Validate() error {
	var seen [Cells]bool
	for _, v := range b {
		if v < 0 || int(v) >= Cells || seen[v] {
			return fmt.Errorf("%w: %v", ErrInvalidBoard, [Cells]int8(b))
		}
		seen[v] = true
	}

	return nil
}

// String renders the board as "1,2,3|4,5,6|7,8,_".
func (b Board) String() string {
	var sb strings.Builder
	for i, v := range b {
		if v == Blank {
			sb.WriteByte('_')
		} else {
			sb.WriteByte(byte('0' + v))
		}
		switch {
		case i == Cells-1:
		case i%Size == Size-1:
			sb.WriteByte('|')
		default:
			sb.WriteByte(',')
		}
	}

	return sb.String()
}

// blank returns the index of the empty cell.
func (b Board) blank() int {
	for i, v := range b {
		if v == Blank {
			return i
		}
	}
	return -1
}

// inversions counts tile pairs out of order, ignoring the blank.
func (b Board) inversions() int {
	n := 0
	for i := 0; i < Cells; i++ {
		for j := i + 1; j < Cells; j++ {
			if b[i] != Blank && b[j] != Blank && b[i] > b[j] {
				n++
			}
		}
	}
	return n
}

// Move slides the blank one cell in its direction.
type Move int

const (
	Up Move = iota
	Down
	Left
	Right
)

var moveNames = [...]string{"Up", "Down", "Left", "Right"}

func (m Move) String() string {
	if m < Up || m > Right {
		return fmt.Sprintf("Move(%d)", int(m))
	}
	return moveNames[m]
}

// Opposite returns the move that undoes m.
func (m Move) Opposite() Move {
	return m ^ 1
}

// Apply slides the blank of b in direction m, reporting false when the
// blank would leave the board.
func (b Board) Apply(m Move) (Board, bool) {
	i := b.blank()
	row, col := i/Size, i%Size
	switch m {
	case Up:
		row--
	case Down:
		row++
	case Left:
		col--
	case Right:
		col++
	default:
		return b, false
	}
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return b, false
	}
	j := row*Size + col
	b[i], b[j] = b[j], b[i]

	return b, true
}

// Scramble applies steps random legal moves to b using rng, never undoing
// the previous move immediately. The result is always solvable towards b.
func Scramble(b Board, steps int, rng *rand.Rand) Board {
	last := Move(-1)
	for k := 0; k < steps; k++ {
		var legal []Move
		for m := Up; m <= Right; m++ {
			if _, ok := b.Apply(m); ok && (last < 0 || m != last.Opposite()) {
				legal = append(legal, m)
			}
		}
		m := legal[rng.Intn(len(legal))]
		b, _ = b.Apply(m)
		last = m
	}

	return b
}

// Problem is a sliding-tile puzzle from Start to Goal.
type Problem struct {
	Start Board
	Goal  Board
}

var (
	_ search.Reversible[Board, Move] = (*Problem)(nil)
	_ search.Inverter[Board, Move]   = (*Problem)(nil)
)

// New validates both boards and their parity. On a 3×3 board a goal is
// reachable iff both boards have the same inversion parity.
func New(start, goal Board) (*Problem, error) {
	if err := start.Validate(); err != nil {
		return nil, err
	}
	if err := goal.Validate(); err != nil {
		return nil, err
	}
	if start.inversions()%2 != goal.inversions()%2 {
		return nil, fmt.Errorf("%w: %v -> %v", ErrUnsolvable, start, goal)
	}

	return &Problem{Start: start, Goal: goal}, nil
}

func (p *Problem) InitialState() Board { return p.Start }

func (p *Problem) IsGoal(b Board) bool { return b == p.Goal }

// Successors tries Up, Down, Left and Right in that order.
func (p *Problem) Successors(b Board) []search.Step[Board, Move] {
	steps := make([]search.Step[Board, Move], 0, 4)
	for m := Up; m <= Right; m++ {
		if next, ok := b.Apply(m); ok {
			steps = append(steps, search.Step[Board, Move]{Action: m, State: next, Cost: 1})
		}
	}

	return steps
}

// Predecessors reuses Successors: every move can be undone, so the boards
// one move away are exactly the boards that reach b in one move. The
// reverse action is the move taking b back to the prior board.
func (p *Problem) Predecessors(b Board) ([]search.Step[Board, Move], error) {
	return p.Successors(b), nil
}

// Invert returns the move that leads from prior back to next.
func (p *Problem) Invert(reverse Move, _, _ Board) Move {
	return reverse.Opposite()
}
