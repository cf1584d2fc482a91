// Package bidirectional implements bidirectional breadth-first search: one
// frontier grows forward from the initial state, another grows backward
// from a concrete goal state, and the search ends where they meet.
//
// What
//
//   - Search(p, goal, opts...) alternates single-state expansions between
//     the two FIFO frontiers, always picking the smaller one (backward on
//     ties). Forward expansion uses Successors, backward expansion uses
//     Predecessors of a search.Reversible problem.
//   - Every newly generated state is looked up in the other side's parent
//     map; the first hit is the meeting state.
//   - The path is the forward chain start→meet followed by the backward
//     chain meet→goal, whose reverse actions are re-oriented by
//     search.Inverter.
//
// Why
//
//   - With branching factor b and solution depth d each side only reaches
//     depth about d/2, so roughly O(b^(d/2)) states are generated instead of
//     O(b^d).
//
// Caveats
//
//   - The search needs a goal state, not just a goal predicate.
//   - Forward and backward costs are never combined, so PathCost is
//     search.CostNotComputed (NaN) on success. Use search.Replay to price a
//     returned path.
//   - The path is not guaranteed to be the fewest-action path in every
//     graph: the first meeting is returned, not the best one.
//
// Complexity
//
//   - Time:   O(b^(d/2)) expansions per side in the typical case.
//   - Memory: O(b^(d/2)) for both parent maps and queues.
//
// Errors
//
//   - search.ErrNilProblem              if p is nil.
//   - search.ErrPredecessorsUnsupported if p is not reversible or its
//     Predecessors says so; never treated as a dead end.
//   - any other error from Predecessors, wrapped.
//   - search.ErrOptionViolation, search.ErrExpansionLimit and ctx.Err()
//     as for the other algorithms.
package bidirectional
