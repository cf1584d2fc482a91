package ucs

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/blindsearch/search"
)

// runner holds the mutable state for a single uniform-cost search.
type runner[S comparable, A any] struct {
	problem search.Problem[S, A] // read-only within Search
	tracker *search.Tracker[S]   // counters, hooks and cancellation
	best    map[S]float64        // best known accumulated cost per state
	parents search.ParentMap[S, A]
	pq      entryPQ[S] // lazy min-heap of (cost, seq, state)
	seq     uint64     // strictly increasing tie-breaker
}

// Search runs uniform-cost search on p and returns a minimum-cost path to
// the nearest goal. Equal-cost states are expanded in discovery order.
//
// Returns search.ErrNegativeCost if a successor reports a negative or NaN
// step cost, search.ErrNilProblem for a nil problem and
// search.ErrOptionViolation for bad options.
func Search[S comparable, A any](p search.Problem[S, A], opts ...search.Option) (search.Result[S, A], error) {
	if p == nil {
		return search.Result[S, A]{}, search.ErrNilProblem
	}
	t, err := search.NewTracker[S]("ucs", opts...)
	if err != nil {
		return search.Result[S, A]{}, err
	}

	start := p.InitialState()
	r := &runner[S, A]{
		problem: p,
		tracker: t,
		best:    map[S]float64{start: 0},
		parents: search.NewParentMap[S, A](start),
	}
	heap.Init(&r.pq)
	r.push(start, 0)

	return r.process()
}

// process pops entries in (cost, seq) order until a goal is finalized, the
// heap empties, or the run is stopped.
func (r *runner[S, A]) process() (search.Result[S, A], error) {
	t := r.tracker
	for r.pq.Len() > 0 {
		if err := t.Check(); err != nil {
			return search.Failure[S, A](t), err
		}
		t.Observe(r.pq.Len())

		e := heap.Pop(&r.pq).(*entry[S])
		// stale entry left behind by a cheaper push
		if e.cost != r.best[e.state] {
			continue
		}

		if r.problem.IsGoal(e.state) {
			actions, err := search.Reconstruct(r.parents, e.state)
			if err != nil {
				return search.Failure[S, A](t), err
			}
			return search.Success(t, e.state, actions, e.cost), nil
		}

		if err := t.Expand(e.state); err != nil {
			return search.Failure[S, A](t), err
		}
		if err := r.relax(e.state, e.cost); err != nil {
			return search.Failure[S, A](t), err
		}
	}

	return search.Failure[S, A](t), nil
}

// relax offers every successor of s a path through s and pushes a fresh
// entry when it is strictly cheaper than the best known one.
func (r *runner[S, A]) relax(s S, cost float64) error {
	for _, st := range r.problem.Successors(s) {
		if st.Cost < 0 || math.IsNaN(st.Cost) {
			return fmt.Errorf("%w: %v -> %v costs %v", search.ErrNegativeCost, s, st.State, st.Cost)
		}
		candidate := cost + st.Cost
		if old, seen := r.best[st.State]; seen && candidate >= old {
			continue
		}
		r.best[st.State] = candidate
		r.parents.Set(st.State, s, st.Action)
		r.push(st.State, candidate)
	}

	return nil
}

func (r *runner[S, A]) push(s S, cost float64) {
	heap.Push(&r.pq, &entry[S]{state: s, cost: cost, seq: r.seq})
	r.seq++
	r.tracker.Generate(s)
}

// entry is one frontier record. Several entries may exist for one state;
// only the one matching best[state] is live.
type entry[S comparable] struct {
	state S
	cost  float64
	seq   uint64
}

// entryPQ is a min-heap of *entry ordered by cost, then by seq.
type entryPQ[S comparable] []*entry[S]

func (pq entryPQ[S]) Len() int { return len(pq) }

func (pq entryPQ[S]) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].seq < pq[j].seq
}

func (pq entryPQ[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be *entry[S].
func (pq *entryPQ[S]) Push(x any) { *pq = append(*pq, x.(*entry[S])) }

// Pop is called by heap.Pop.
func (pq *entryPQ[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
