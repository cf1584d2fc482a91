// Package mapcoloring poses map colouring as an incremental assignment
// search problem over a constraint graph.
//
// Regions are vertices of a core.Graph and adjacent regions must receive
// different colours. Regions are coloured one at a time in a fixed order:
// Successors assigns the next region every colour consistent with its
// already coloured neighbours, so every reachable state is a consistent
// partial colouring and the goal test only counts assignments.
//
// Predecessors removes the most recently ordered assignment, which makes
// the problem usable by bidirectional search towards a known complete
// colouring built with StateOf.
package mapcoloring

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/blindsearch/core"
	"github.com/katalvlaran/blindsearch/search"
)

// Sentinel errors returned by New and StateOf.
var (
	// ErrNilGraph is returned if a nil constraint graph is passed.
	ErrNilGraph = errors.New("mapcoloring: constraint graph is nil")

	// ErrNoColors is returned when the colour list is empty.
	ErrNoColors = errors.New("mapcoloring: at least one colour is required")

	// ErrUnknownRegion is returned when the order (or an assignment) names
	// regions that are not vertices of the graph. The message lists them.
	ErrUnknownRegion = errors.New("mapcoloring: unknown regions")

	// ErrDuplicateRegion is returned when a region appears twice in the order.
	ErrDuplicateRegion = errors.New("mapcoloring: region listed twice")

	// ErrInvalidRegion is returned for region names that cannot be encoded
	// in a State (empty, or containing '=' or ';').
	ErrInvalidRegion = errors.New("mapcoloring: invalid region name")
)

// Kind distinguishes the two action types.
type Kind int

const (
	// Assign colours a region.
	Assign Kind = iota
	// Unassign removes a region's colour. Only Predecessors reports it.
	Unassign
)

// Action is an assignment or removal of one region's colour.
type Action struct {
	Kind   Kind
	Region string
	Color  int
}

// String renders "assign(WA=1)" or "unassign(WA)".
func (a Action) String() string {
	if a.Kind == Unassign {
		return "unassign(" + a.Region + ")"
	}
	return fmt.Sprintf("assign(%s=%d)", a.Region, a.Color)
}

// State is an immutable partial colouring. Its encoding is canonical
// (assignments sorted by region), so equal colourings compare equal.
type State struct {
	encoded string
	size    int
}

// newState canonicalises a region→colour map.
func newState(assign map[string]int) State {
	regions := make([]string, 0, len(assign))
	for r := range assign {
		regions = append(regions, r)
	}
	sort.Strings(regions)
	var sb strings.Builder
	for i, r := range regions {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(r)
		sb.WriteByte('=')
		sb.WriteString(strconv.Itoa(assign[r]))
	}

	return State{encoded: sb.String(), size: len(regions)}
}

// Len returns the number of coloured regions.
func (s State) Len() int { return s.size }

// Assignments decodes the colouring into a fresh map.
func (s State) Assignments() map[string]int {
	out := make(map[string]int, s.size)
	if s.encoded == "" {
		return out
	}
	for _, pair := range strings.Split(s.encoded, ";") {
		r, c, _ := strings.Cut(pair, "=")
		n, _ := strconv.Atoi(c)
		out[r] = n
	}

	return out
}

// String returns the canonical encoding "NT=2;SA=3;WA=1", or "{}" when empty.
func (s State) String() string {
	if s.encoded == "" {
		return "{}"
	}
	return s.encoded
}

// Problem colours the regions of a constraint graph in a fixed order.
type Problem struct {
	colors    []int
	order     []string
	conflicts map[string][]string
}

var (
	_ search.Reversible[State, Action] = (*Problem)(nil)
	_ search.Inverter[State, Action]   = (*Problem)(nil)
)

// New validates the order against g and precomputes each region's
// neighbours in either edge direction. The graph is not retained.
func New(g *core.Graph, colors []int, order []string) (*Problem, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(colors) == 0 {
		return nil, ErrNoColors
	}
	seen := make(map[string]struct{}, len(order))
	var missing []string
	for _, r := range order {
		if r == "" || strings.ContainsAny(r, "=;") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRegion, r)
		}
		if _, dup := seen[r]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRegion, r)
		}
		seen[r] = struct{}{}
		if !g.HasVertex(r) {
			missing = append(missing, r)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRegion, strings.Join(missing, ", "))
	}

	conflicts := make(map[string][]string, len(order))
	for _, r := range order {
		out, err := g.Neighbors(r)
		if err != nil {
			return nil, err
		}
		in, err := g.InNeighbors(r)
		if err != nil {
			return nil, err
		}
		nbrs := make(map[string]struct{}, len(out)+len(in))
		for _, e := range append(out, in...) {
			if n := e.Opposite(r); n != r {
				nbrs[n] = struct{}{}
			}
		}
		list := make([]string, 0, len(nbrs))
		for n := range nbrs {
			list = append(list, n)
		}
		sort.Strings(list)
		conflicts[r] = list
	}

	return &Problem{
		colors:    append([]int(nil), colors...),
		order:     append([]string(nil), order...),
		conflicts: conflicts,
	}, nil
}

// Order returns the assignment order.
func (p *Problem) Order() []string { return append([]string(nil), p.order...) }

// StateOf builds the canonical State of assign, e.g. a complete colouring
// to use as the goal of bidirectional search. Regions outside the order are
// rejected with ErrUnknownRegion.
func (p *Problem) StateOf(assign map[string]int) (State, error) {
	var missing []string
	for r := range assign {
		if _, ok := p.conflicts[r]; !ok {
			missing = append(missing, r)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return State{}, fmt.Errorf("%w: %s", ErrUnknownRegion, strings.Join(missing, ", "))
	}

	return newState(assign), nil
}

// Consistent reports whether no two adjacent coloured regions share a colour.
func (p *Problem) Consistent(s State) bool {
	a := s.Assignments()
	for r, c := range a {
		for _, n := range p.conflicts[r] {
			if nc, ok := a[n]; ok && nc == c {
				return false
			}
		}
	}
	return true
}

// InitialState is the empty colouring.
func (p *Problem) InitialState() State { return State{} }

// IsGoal reports whether every region is coloured.
func (p *Problem) IsGoal(s State) bool { return s.size == len(p.order) }

// Successors colours the next region in order with each consistent colour,
// at unit cost.
func (p *Problem) Successors(s State) []search.Step[State, Action] {
	k := s.size
	if k >= len(p.order) {
		return nil
	}
	region := p.order[k]
	a := s.Assignments()
	steps := make([]search.Step[State, Action], 0, len(p.colors))
	for _, c := range p.colors {
		if !p.allowed(a, region, c) {
			continue
		}
		a[region] = c
		steps = append(steps, search.Step[State, Action]{
			Action: Action{Kind: Assign, Region: region, Color: c},
			State:  newState(a),
			Cost:   1,
		})
	}

	return steps
}

func (p *Problem) allowed(a map[string]int, region string, color int) bool {
	for _, n := range p.conflicts[region] {
		if c, ok := a[n]; ok && c == color {
			return false
		}
	}
	return true
}

// Predecessors removes the colour of the last region in order that s
// covers. A state that is not an order prefix has no predecessors.
func (p *Problem) Predecessors(s State) ([]search.Step[State, Action], error) {
	k := s.size
	if k == 0 || k > len(p.order) {
		return nil, nil
	}
	last := p.order[k-1]
	a := s.Assignments()
	if _, ok := a[last]; !ok {
		return nil, nil
	}
	delete(a, last)

	return []search.Step[State, Action]{{
		Action: Action{Kind: Unassign, Region: last},
		State:  newState(a),
		Cost:   1,
	}}, nil
}

// Invert turns Unassign(r) into the Assign that colours r as in next.
func (p *Problem) Invert(reverse Action, _, next State) Action {
	if reverse.Kind != Unassign {
		return reverse
	}
	return Action{Kind: Assign, Region: reverse.Region, Color: next.Assignments()[reverse.Region]}
}
