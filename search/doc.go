// Package search defines the problem abstraction and the result contract
// shared by the uninformed search algorithms of blindsearch.
//
// What
//
//   - Problem[S, A]: InitialState, IsGoal and Successors over an opaque,
//     comparable state type S and an opaque action type A.
//   - Reversible[S, A]: the optional Predecessors capability required by
//     bidirectional search. Predecessors(p, s) performs the capability check
//     and fails with ErrPredecessorsUnsupported instead of returning nothing.
//   - Inverter[S, A]: optional translation of reverse actions into forward
//     actions for the backward half of a bidirectional path.
//   - Result[S, A]: Found, State, Actions, PathCost, Expanded, Generated,
//     MaxFrontier and Elapsed.
//   - ParentMap / Reconstruct: predecessor bookkeeping and path recovery.
//   - Tracker: the explicit per-call search context (counters, hooks,
//     cancellation, timing and logging).
//
// Cost conventions
//
//	PathCost is +Inf when no goal was found and NaN when an algorithm does
//	not compute a combined cost (bidirectional search). Use
//	Result.CostComputed to tell the two apart from a real cost.
//
// Options
//
//   - WithContext(ctx):         cancellation, checked once per loop iteration.
//   - WithLogger(l):            Debug summary per finished search.
//   - WithMaxExpansions(n):     safety cap; n<0 is ErrOptionViolation.
//   - WithOnExpand(fn):         hook per expanded state.
//   - WithOnGenerate(fn):       hook per generated state.
//   - WithReopen():             depth-limited DFS re-pushes states found shallower.
//
// Concurrency
//
//	Nothing in this package is shared between calls. Parallel searches are
//	safe as long as the Problem itself is read-only.
package search
