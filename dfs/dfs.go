package dfs

import (
	"github.com/katalvlaran/blindsearch/search"
)

// NoLimit disables the depth limit of Search.
const NoLimit = -1

// frame pairs a state with its depth from the initial state.
type frame[S comparable] struct {
	state S
	depth int
}

// dfsWalker encapsulates state during one DFS pass.
type dfsWalker[S comparable, A any] struct {
	problem search.Problem[S, A]
	tracker *search.Tracker[S]
	limit   int
	reopen  bool
	stack   []frame[S]
	parents search.ParentMap[S, A]
	depth   map[S]int     // depth each state was last pushed at
	step    map[S]float64 // cost of the step into each state from its parent
}

// Search performs depth-first search on p. States at depth >= limit are
// goal-tested but not expanded; a negative limit (NoLimit) disables the
// bound. Without a limit, termination is only guaranteed on finite state
// spaces.
//
// The first discovery of a state wins: it is recorded and pushed once and
// never re-enqueued, even when a later path reaches it in fewer actions.
// search.WithReopen relaxes this under a limit, where a state generated
// again at a strictly shallower depth is re-parented and pushed again.
//
// Successors are pushed in the order they are offered, so the last
// successor is explored first.
func Search[S comparable, A any](p search.Problem[S, A], limit int, opts ...search.Option) (search.Result[S, A], error) {
	return run(p, limit, "dfs", opts...)
}

func run[S comparable, A any](p search.Problem[S, A], limit int, algo string, opts ...search.Option) (search.Result[S, A], error) {
	if p == nil {
		return search.Result[S, A]{}, search.ErrNilProblem
	}
	t, err := search.NewTracker[S](algo, opts...)
	if err != nil {
		return search.Result[S, A]{}, err
	}

	start := p.InitialState()
	w := &dfsWalker[S, A]{
		problem: p,
		tracker: t,
		limit:   limit,
		reopen:  t.Options().Reopen && limit >= 0,
		stack:   []frame[S]{{state: start}},
		parents: search.NewParentMap[S, A](start),
		depth:   map[S]int{start: 0},
		step:    map[S]float64{start: 0},
	}
	t.Generate(start)

	return w.loop()
}

// loop pops frames until a goal is found, the stack empties, or the run
// is stopped.
func (w *dfsWalker[S, A]) loop() (search.Result[S, A], error) {
	t := w.tracker
	for len(w.stack) > 0 {
		if err := t.Check(); err != nil {
			return search.Failure[S, A](t), err
		}
		t.Observe(len(w.stack))

		f := w.pop()
		// superseded by a shallower frame of the same state
		if f.depth != w.depth[f.state] {
			continue
		}
		if w.problem.IsGoal(f.state) {
			actions, err := search.Reconstruct(w.parents, f.state)
			if err != nil {
				return search.Failure[S, A](t), err
			}
			return search.Success(t, f.state, actions, w.pathCost(f.state)), nil
		}

		// at the depth bound: goal-tested above, never expanded
		if w.limit >= 0 && f.depth >= w.limit {
			continue
		}

		if err := t.Expand(f.state); err != nil {
			return search.Failure[S, A](t), err
		}
		w.pushSuccessors(f)
	}

	return search.Failure[S, A](t), nil
}

func (w *dfsWalker[S, A]) pop() frame[S] {
	n := len(w.stack) - 1
	f := w.stack[n]
	w.stack = w.stack[:n]

	return f
}

// pushSuccessors records and pushes every successor of f not seen yet, or,
// when reopening, seen only deeper than f.depth+1.
func (w *dfsWalker[S, A]) pushSuccessors(f frame[S]) {
	d := f.depth + 1
	for _, st := range w.problem.Successors(f.state) {
		if old, seen := w.depth[st.State]; seen && (!w.reopen || d >= old) {
			continue
		}
		w.parents.Set(st.State, f.state, st.Action)
		w.depth[st.State] = d
		w.step[st.State] = st.Cost
		w.stack = append(w.stack, frame[S]{state: st.State, depth: d})
		w.tracker.Generate(st.State)
	}
}

// pathCost sums step costs along the current parent chain of s. Depths
// strictly decrease towards the root, so the walk terminates.
func (w *dfsWalker[S, A]) pathCost(s S) float64 {
	total := 0.0
	for {
		link := w.parents[s]
		if link.Root {
			return total
		}
		total += w.step[s]
		s = link.Parent
	}
}
