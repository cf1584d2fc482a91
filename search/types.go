package search

import (
	"errors"
	"math"
	"time"
)

// Sentinel errors shared by every search algorithm.
var (
	// ErrNilProblem is returned when a nil Problem is passed to an algorithm.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrPredecessorsUnsupported is returned when reverse transitions are
	// requested from a problem that cannot produce them.
	ErrPredecessorsUnsupported = errors.New("search: predecessors not supported")

	// ErrNegativeCost is returned by cost-sensitive algorithms when a
	// successor reports a negative (or NaN) step cost.
	ErrNegativeCost = errors.New("search: negative step cost")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrExpansionLimit is returned when WithMaxExpansions stops a search.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrNotDiscovered is returned when a path is requested to a state that
	// is absent from the parent map.
	ErrNotDiscovered = errors.New("search: state was never generated")

	// ErrInvalidAction is returned by Replay when an action is not offered
	// by Successors of the current state.
	ErrInvalidAction = errors.New("search: action not applicable")
)

// Step is one transition yielded by Successors or Predecessors.
//
// For Successors, Action leads from the queried state to State.
// For Predecessors, Action is the reverse action and State is the prior state
// from which the forward counterpart of Action reaches the queried state.
type Step[S comparable, A any] struct {
	Action A
	State  S
	Cost   float64
}

// Problem is the capability every search algorithm depends on.
//
// Successors must be finite, deterministic and free of side effects; its
// order decides generation order and therefore tie-breaking.
type Problem[S comparable, A any] interface {
	InitialState() S
	IsGoal(s S) bool
	Successors(s S) []Step[S, A]
}

// Reversible is implemented by problems that can enumerate reverse
// transitions. Bidirectional search requires it.
type Reversible[S comparable, A any] interface {
	Problem[S, A]

	// Predecessors returns the reverse transitions into s. Implementations
	// that cannot reverse in their current configuration must return
	// ErrPredecessorsUnsupported rather than an empty slice.
	Predecessors(s S) ([]Step[S, A], error)
}

// Inverter maps a reverse action, as reported by Predecessors, to the
// forward action leading from prior to next.
type Inverter[S comparable, A any] interface {
	Invert(reverse A, prior, next S) A
}

// Result is the outcome of a single search call.
type Result[S comparable, A any] struct {
	// Found reports whether a goal state was reached.
	Found bool

	// State is the goal state reached; the zero value when !Found.
	State S

	// Actions leads from the initial state to State. Empty when !Found.
	Actions []A

	// PathCost is the sum of step costs along Actions, +Inf when !Found,
	// and NaN when the algorithm does not compute it.
	PathCost float64

	// Expanded counts states dequeued and examined.
	Expanded int

	// Generated counts states ever inserted into a frontier, including the
	// initial state.
	Generated int

	// MaxFrontier is the peak (combined) frontier size observed.
	MaxFrontier int

	// Elapsed is the wall-clock duration of the call.
	Elapsed time.Duration
}

// CostComputed reports whether PathCost carries a real number.
func (r Result[S, A]) CostComputed() bool {
	return !math.IsNaN(r.PathCost)
}

// Depth returns the number of actions in the solution path.
func (r Result[S, A]) Depth() int {
	return len(r.Actions)
}

// CostNotComputed is the PathCost placeholder for algorithms that never
// accumulate a combined path cost.
var CostNotComputed = math.NaN()

// Success builds a found Result from the tracker's counters.
func Success[S comparable, A any](t *Tracker[S], state S, actions []A, cost float64) Result[S, A] {
	if actions == nil {
		actions = []A{}
	}
	t.finish(true)

	return Result[S, A]{
		Found:       true,
		State:       state,
		Actions:     actions,
		PathCost:    cost,
		Expanded:    t.Expanded,
		Generated:   t.Generated,
		MaxFrontier: t.MaxFrontier,
		Elapsed:     t.elapsed,
	}
}

// Failure builds a not-found Result from the tracker's counters.
func Failure[S comparable, A any](t *Tracker[S]) Result[S, A] {
	t.finish(false)

	return Result[S, A]{
		Actions:     []A{},
		PathCost:    math.Inf(1),
		Expanded:    t.Expanded,
		Generated:   t.Generated,
		MaxFrontier: t.MaxFrontier,
		Elapsed:     t.elapsed,
	}
}
