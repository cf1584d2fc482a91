// Package ucs implements uniform-cost search over a search.Problem.
//
// What
//
//   - Search(p, opts...): a priority frontier ordered by accumulated path
//     cost, with a strictly increasing insertion sequence as tie-breaker,
//     so states of equal cost are expanded in discovery order.
//
// Why
//
//   - Returns a minimum-cost path for any problem whose step costs are
//     non-negative. BFS only minimises the number of actions.
//
// How
//
// The frontier is a container/heap min-queue with lazy decrease-key: a
// cheaper path to a known state pushes a fresh entry and overwrites the
// state's best cost and parent, leaving the old entry in the heap. On pop,
// an entry whose cost differs from the best known cost is stale and is
// discarded without being counted as expanded. A state popped with its best
// cost is final, because every untried edge has non-negative cost.
//
// The goal test happens on pop, never on generation, which is what makes
// the returned cost optimal.
//
// Complexity (V = reachable states, E = transitions)
//
//   - Time:   O((V + E) log E)
//   - Memory: O(V + E) for the cost map, parent map and heap entries.
//
// Errors
//
//   - search.ErrNilProblem       if p is nil.
//   - search.ErrNegativeCost     if a successor reports a negative or NaN cost.
//   - search.ErrOptionViolation  for invalid options.
//   - search.ErrExpansionLimit   when WithMaxExpansions stops the run.
//   - ctx.Err()                  when the context is cancelled.
package ucs
