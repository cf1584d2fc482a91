package bidirectional

import (
	"fmt"

	"github.com/katalvlaran/blindsearch/search"
)

// frontier is one half of a bidirectional search: a FIFO queue, the parent
// map of every state it generated, and the transition it expands with.
type frontier[S comparable, A any] struct {
	name    string
	queue   []S
	parents search.ParentMap[S, A]
	steps   func(S) ([]search.Step[S, A], error)
}

func newFrontier[S comparable, A any](name string, root S, steps func(S) ([]search.Step[S, A], error)) *frontier[S, A] {
	return &frontier[S, A]{
		name:    name,
		queue:   []S{root},
		parents: search.NewParentMap[S, A](root),
		steps:   steps,
	}
}

// expand pops one state, records its unseen neighbours and reports the
// first one already known to other. Counters live in t.
func (f *frontier[S, A]) expand(t *search.Tracker[S], other search.ParentMap[S, A]) (meet S, met bool, err error) {
	s := f.queue[0]
	f.queue = f.queue[1:]
	if err = t.Expand(s); err != nil {
		return meet, false, err
	}

	steps, err := f.steps(s)
	if err != nil {
		return meet, false, fmt.Errorf("bidirectional: %s expansion of %v: %w", f.name, s, err)
	}
	for _, st := range steps {
		if f.parents.Has(st.State) {
			continue
		}
		f.parents.Set(st.State, s, st.Action)
		f.queue = append(f.queue, st.State)
		t.Generate(st.State)
		if other.Has(st.State) {
			return st.State, true, nil
		}
	}

	return meet, false, nil
}

// Search runs bidirectional breadth-first search from p's initial state
// towards goal. p must implement search.Reversible; otherwise the call fails
// with search.ErrPredecessorsUnsupported.
//
// Each iteration expands one state of the smaller frontier (the backward
// one on ties). The search stops at the first state generated by one side
// that the other side already knows, or when either frontier empties.
//
// Result.State is goal and Result.PathCost is search.CostNotComputed.
// Reverse actions are turned into forward ones by search.Inverter when p
// implements it and used unchanged otherwise.
func Search[S comparable, A any](p search.Problem[S, A], goal S, opts ...search.Option) (search.Result[S, A], error) {
	if p == nil {
		return search.Result[S, A]{}, search.ErrNilProblem
	}
	t, err := search.NewTracker[S]("bidirectional", opts...)
	if err != nil {
		return search.Result[S, A]{}, err
	}
	rev, ok := p.(search.Reversible[S, A])
	if !ok {
		_, err = search.Predecessors(p, goal)
		return search.Failure[S, A](t), err
	}

	start := p.InitialState()
	t.Generate(start)
	if start == goal {
		t.Observe(1)
		return search.Success[S, A](t, goal, nil, 0), nil
	}
	t.Generate(goal)

	fwd := newFrontier(
		"forward", start,
		func(s S) ([]search.Step[S, A], error) { return p.Successors(s), nil },
	)
	bwd := newFrontier("backward", goal, rev.Predecessors)

	for len(fwd.queue) > 0 && len(bwd.queue) > 0 {
		if err = t.Check(); err != nil {
			return search.Failure[S, A](t), err
		}
		t.Observe(len(fwd.queue) + len(bwd.queue))

		side, other := bwd, fwd
		if len(fwd.queue) < len(bwd.queue) {
			side, other = fwd, bwd
		}
		meet, met, err := side.expand(t, other.parents)
		if err != nil {
			return search.Failure[S, A](t), err
		}
		if met {
			actions, err := join(p, fwd.parents, bwd.parents, meet, goal)
			if err != nil {
				return search.Failure[S, A](t), err
			}
			return search.Success(t, goal, actions, search.CostNotComputed), nil
		}
	}

	return search.Failure[S, A](t), nil
}

// join concatenates the forward path start→meet with the backward chain
// meet→goal. Walking the backward parent map from meet already yields the
// second half in forward order; each reverse action is re-oriented on the
// way.
func join[S comparable, A any](p search.Problem[S, A], fwd, bwd search.ParentMap[S, A], meet, goal S) ([]A, error) {
	actions, err := search.Reconstruct(fwd, meet)
	if err != nil {
		return nil, err
	}
	inv, _ := p.(search.Inverter[S, A])

	cur := meet
	for hops := 0; cur != goal; hops++ {
		if hops > len(bwd) {
			return nil, fmt.Errorf("bidirectional: backward chain from %v does not reach %v", meet, goal)
		}
		link, ok := bwd[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %v", search.ErrNotDiscovered, cur)
		}
		a := link.Action
		if inv != nil {
			a = inv.Invert(a, cur, link.Parent)
		}
		actions = append(actions, a)
		cur = link.Parent
	}

	return actions, nil
}
