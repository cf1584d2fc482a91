package search

import "fmt"

// Link records how a state was first (or most cheaply) reached.
// Root marks the state a frontier was seeded with.
type Link[S comparable, A any] struct {
	Parent S
	Action A
	Root   bool
}

// ParentMap maps every generated state to the Link that discovered it.
type ParentMap[S comparable, A any] map[S]Link[S, A]

// NewParentMap returns a map seeded with root.
func NewParentMap[S comparable, A any](root S) ParentMap[S, A] {
	m := make(ParentMap[S, A])
	m[root] = Link[S, A]{Root: true}

	return m
}

// Has reports whether s was generated.
func (m ParentMap[S, A]) Has(s S) bool {
	_, ok := m[s]
	return ok
}

// Set records that child was reached from parent via action.
func (m ParentMap[S, A]) Set(child, parent S, action A) {
	m[child] = Link[S, A]{Parent: parent, Action: action}
}

// Reconstruct walks parent links back from goal to the root and returns the
// actions from the root to goal, in order.
func Reconstruct[S comparable, A any](parents ParentMap[S, A], goal S) ([]A, error) {
	if !parents.Has(goal) {
		return nil, fmt.Errorf("%w: %v", ErrNotDiscovered, goal)
	}
	actions := []A{}
	cur := goal
	// a parent chain is a tree path, so it is never longer than the map
	for hops := 0; ; hops++ {
		if hops > len(parents) {
			return nil, fmt.Errorf("search: parent chain from %v does not reach a root", goal)
		}
		link, ok := parents[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrNotDiscovered, cur)
		}
		if link.Root {
			break
		}
		actions = append(actions, link.Action)
		cur = link.Parent
	}
	// reverse to get root → goal
	for i, j := 0, len(actions)-1; i < j; i, j = i+1, j-1 {
		actions[i], actions[j] = actions[j], actions[i]
	}

	return actions, nil
}

// Predecessors queries the reverse transitions of s, failing with
// ErrPredecessorsUnsupported when p does not implement Reversible.
func Predecessors[S comparable, A any](p Problem[S, A], s S) ([]Step[S, A], error) {
	r, ok := p.(Reversible[S, A])
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrPredecessorsUnsupported, p)
	}

	return r.Predecessors(s)
}

// Replay applies actions from the initial state of p, matching each one
// against the offered successors with equal, and returns the final state
// and the accumulated cost. A nil equal compares actions with ==, which
// panics for non-comparable action types.
func Replay[S comparable, A any](p Problem[S, A], actions []A, equal func(a, b A) bool) (S, float64, error) {
	if p == nil {
		var zero S
		return zero, 0, ErrNilProblem
	}
	if equal == nil {
		equal = func(a, b A) bool { return any(a) == any(b) }
	}
	cur := p.InitialState()
	cost := 0.0
	for i, a := range actions {
		matched := false
		for _, st := range p.Successors(cur) {
			if equal(st.Action, a) {
				cur = st.State
				cost += st.Cost
				matched = true
				break
			}
		}
		if !matched {
			return cur, cost, fmt.Errorf("%w: step %d (%v) from %v", ErrInvalidAction, i, a, cur)
		}
	}

	return cur, cost, nil
}
