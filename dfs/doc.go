// Package dfs implements depth-first search (optionally depth-limited) and
// iterative-deepening depth-first search over a search.Problem.
//
// What
//
//   - Search(p, limit, opts...): explicit stack of (state, depth) seeded with
//     (initial, 0). Pop, goal-test; a state at depth >= limit is not
//     expanded (and not counted as expanded); otherwise each unseen
//     successor is recorded and pushed with depth+1. A generated state is
//     never re-enqueued. With search.WithReopen and a limit, a state reached
//     again at a strictly shallower depth is re-parented and pushed again,
//     and the deeper frame is dropped when popped.
//   - IterativeDeepening(p, maxDepth, opts...): Search with limits
//     0, 1, ..., maxDepth, returning as soon as one pass succeeds.
//
// Guarantees
//
//   - Depth bound: with limit d, no state deeper than d is expanded.
//   - DFS is neither cost-optimal nor complete on infinite state spaces
//     without a limit. First discovery wins even when a later path is
//     shorter.
//   - IDDFS finds a goal at the shallowest depth d <= maxDepth on trees
//     (a path of d actions), trading repeated shallow passes for
//     depth-first memory use. On graphs where paths converge, a state first
//     reached along a long branch stays at that depth for the pass, so a
//     goal behind it may only be found by a later pass. WithReopen restores
//     the shallowest-first property there at the cost of pushing states
//     more than once.
//
// Complexity (b = branching factor, d = depth or limit)
//
//   - Search:             Time O(b^d), Memory O(b·d) for the stack plus the
//     parent map of generated states.
//   - IterativeDeepening: Time O(b^d) overall, same memory per pass.
//
// Errors
//
//   - search.ErrNilProblem       if p is nil.
//   - search.ErrOptionViolation  for invalid options or maxDepth < 0.
//   - search.ErrExpansionLimit   when WithMaxExpansions stops the run
//     (across all passes for IterativeDeepening).
//   - ctx.Err()                  when the context is cancelled.
//
// A depth limit that prevents reaching the goal is not an error: the result
// simply reports Found=false.
package dfs
