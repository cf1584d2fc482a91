package bfs

import (
	"github.com/katalvlaran/blindsearch/search"
)

// walker encapsulates mutable BFS state for a single call.
type walker[S comparable, A any] struct {
	problem search.Problem[S, A]
	tracker *search.Tracker[S]
	queue   []S
	parents search.ParentMap[S, A]
	cost    map[S]float64
}

// Search runs breadth-first search on p, applying any number of
// functional options. Returns search.ErrNilProblem for a nil problem,
// search.ErrOptionViolation for bad options, search.ErrExpansionLimit or a
// context error when stopped early (with the counters gathered so far).
func Search[S comparable, A any](p search.Problem[S, A], opts ...search.Option) (search.Result[S, A], error) {
	if p == nil {
		return search.Result[S, A]{}, search.ErrNilProblem
	}
	t, err := search.NewTracker[S]("bfs", opts...)
	if err != nil {
		return search.Result[S, A]{}, err
	}

	start := p.InitialState()
	w := &walker[S, A]{
		problem: p,
		tracker: t,
		queue:   []S{start},
		parents: search.NewParentMap[S, A](start),
		cost:    map[S]float64{start: 0},
	}
	t.Generate(start)

	return w.loop()
}

// loop processes the queue until a goal is dequeued, the queue empties,
// or the run is stopped.
func (w *walker[S, A]) loop() (search.Result[S, A], error) {
	t := w.tracker
	for len(w.queue) > 0 {
		if err := t.Check(); err != nil {
			return search.Failure[S, A](t), err
		}
		t.Observe(len(w.queue))

		s := w.dequeue()
		if w.problem.IsGoal(s) {
			actions, err := search.Reconstruct(w.parents, s)
			if err != nil {
				return search.Failure[S, A](t), err
			}
			return search.Success(t, s, actions, w.cost[s]), nil
		}

		if err := t.Expand(s); err != nil {
			return search.Failure[S, A](t), err
		}
		w.enqueueSuccessors(s)
	}

	return search.Failure[S, A](t), nil
}

// dequeue pops the first state of the queue.
func (w *walker[S, A]) dequeue() S {
	s := w.queue[0]
	w.queue = w.queue[1:]

	return s
}

// enqueueSuccessors records and enqueues every successor of s not seen yet.
func (w *walker[S, A]) enqueueSuccessors(s S) {
	for _, st := range w.problem.Successors(s) {
		if w.parents.Has(st.State) {
			continue
		}
		w.parents.Set(st.State, s, st.Action)
		w.cost[st.State] = w.cost[s] + st.Cost
		w.queue = append(w.queue, st.State)
		w.tracker.Generate(st.State)
	}
}
