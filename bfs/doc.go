// Package bfs provides breadth-first search over a search.Problem,
// returning the fewest-actions path to the nearest goal state.
//
// What
//
//   - FIFO frontier seeded with the initial state.
//   - Dequeue, goal-test, otherwise expand: each successor that is not yet
//     in the parent map is recorded (parent, action, accumulated cost),
//     enqueued and counted as generated.
//   - Terminates with Found=false when the frontier empties.
//
// Why
//
//   - On unweighted (or uniformly weighted) problems the returned path has
//     the minimum number of actions among all paths to any goal.
//   - Expanded and Generated reflect exactly one visit per state.
//
// Cost
//
//	PathCost is the sum of step costs along the returned path. BFS never
//	looks at costs while choosing, so on weighted problems that sum need not
//	be minimal; use package ucs for cost-optimal paths.
//
// Determinism
//
//	States are generated in Successors order, so repeated calls on the same
//	problem yield identical paths and counters.
//
// Complexity (b = branching factor, d = goal depth)
//
//   - Time:   O(b^d)
//   - Memory: O(b^d)   (frontier + parent map)
//
// Usage
//
//	res, err := bfs.Search(problem)
//	res, err := bfs.Search(problem, search.WithContext(ctx), search.WithMaxExpansions(1e6))
//
// Errors
//
//   - search.ErrNilProblem       if problem is nil.
//   - search.ErrOptionViolation  for invalid options.
//   - search.ErrExpansionLimit   when WithMaxExpansions stops the run.
//   - ctx.Err()                  when the context is cancelled.
package bfs
