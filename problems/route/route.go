// Package route poses "get from a start vertex to any goal vertex" on a
// core.Graph as a search problem.
//
// States are vertex IDs and actions are Moves along one edge. Step cost is
// the edge weight on weighted graphs and 1 otherwise. Problems are
// reversible: predecessors follow incoming edges and Invert flips the
// recorded move.
package route

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/blindsearch/core"
	"github.com/katalvlaran/blindsearch/search"
)

// Sentinel errors returned by New.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("route: graph is nil")

	// ErrVertexNotFound is returned when start or a goal is not a vertex.
	ErrVertexNotFound = errors.New("route: vertex not found")

	// ErrNoGoals is returned when no goal vertex is given.
	ErrNoGoals = errors.New("route: at least one goal is required")
)

// Move traverses one edge From→To.
type Move struct {
	From string
	To   string
}

// String renders the move as "From->To".
func (m Move) String() string {
	return m.From + "->" + m.To
}

// Problem is a route search over a read-only graph.
type Problem struct {
	graph  *core.Graph
	start  string
	goals  []string
	isGoal map[string]struct{}
}

var (
	_ search.Reversible[string, Move] = (*Problem)(nil)
	_ search.Inverter[string, Move]   = (*Problem)(nil)
)

// New validates start and goals against g and returns the problem.
// The graph must not be mutated while searches run on it.
func New(g *core.Graph, start string, goals ...string) (*Problem, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: start %q", ErrVertexNotFound, start)
	}
	if len(goals) == 0 {
		return nil, ErrNoGoals
	}
	isGoal := make(map[string]struct{}, len(goals))
	for _, goal := range goals {
		if !g.HasVertex(goal) {
			return nil, fmt.Errorf("%w: goal %q", ErrVertexNotFound, goal)
		}
		isGoal[goal] = struct{}{}
	}

	return &Problem{
		graph:  g,
		start:  start,
		goals:  append([]string(nil), goals...),
		isGoal: isGoal,
	}, nil
}

// InitialState returns the start vertex.
func (p *Problem) InitialState() string { return p.start }

// IsGoal reports whether s is one of the goal vertices.
func (p *Problem) IsGoal(s string) bool {
	_, ok := p.isGoal[s]
	return ok
}

// Goals returns the goal vertices in the order given to New.
func (p *Problem) Goals() []string {
	return append([]string(nil), p.goals...)
}

// Graph returns the underlying graph.
func (p *Problem) Graph() *core.Graph { return p.graph }

// Successors follows every outgoing edge of s in insertion order.
func (p *Problem) Successors(s string) []search.Step[string, Move] {
	edges, err := p.graph.Neighbors(s)
	if err != nil {
		return nil
	}
	steps := make([]search.Step[string, Move], 0, len(edges))
	for _, e := range edges {
		next := e.Opposite(s)
		steps = append(steps, search.Step[string, Move]{
			Action: Move{From: s, To: next},
			State:  next,
			Cost:   p.cost(e),
		})
	}

	return steps
}

// Predecessors follows every incoming edge of s in insertion order. The
// reverse action of each step points from s back to the prior vertex.
func (p *Problem) Predecessors(s string) ([]search.Step[string, Move], error) {
	edges, err := p.graph.InNeighbors(s)
	if err != nil {
		return nil, fmt.Errorf("route: predecessors of %q: %w", s, err)
	}
	steps := make([]search.Step[string, Move], 0, len(edges))
	for _, e := range edges {
		prior := e.Opposite(s)
		steps = append(steps, search.Step[string, Move]{
			Action: Move{From: s, To: prior},
			State:  prior,
			Cost:   p.cost(e),
		})
	}

	return steps, nil
}

// Invert turns a reverse move next->prior into the forward move prior->next.
func (p *Problem) Invert(reverse Move, _, _ string) Move {
	return Move{From: reverse.To, To: reverse.From}
}

func (p *Problem) cost(e *core.Edge) float64 {
	if p.graph.Weighted() {
		return e.Weight
	}

	return 1
}
