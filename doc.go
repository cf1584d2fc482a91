// Package blindsearch is a small library of uninformed (blind) search
// algorithms over implicitly defined state spaces.
//
// 🚀 What is blindsearch?
//
//	A problem names an initial state, a goal test and a successor function.
//	Five algorithms search it without any heuristic:
//		• bfs/           - breadth-first search, fewest actions
//		• dfs/           - depth-first search (optionally depth-limited) and
//		                   iterative deepening
//		• ucs/           - uniform-cost search, cheapest path
//		• bidirectional/ - breadth-first from both ends, meeting in the middle
//
// ✨ Why blindsearch?
//
//   - One contract: every algorithm takes a search.Problem and returns a
//     search.Result with the path, its cost and expansion statistics
//   - Explicit runs: no globals, cancellation via context, expansion caps
//     and hooks through search.Option
//   - Generic: states are any comparable type, actions any type
//
// Under the hood:
//
//	search/     - Problem, Step, Result, options, the run Tracker and path helpers
//	core/       - thread-safe Graph, Edge and vertex primitives
//	problems/   - route (graphs), mapcoloring, grid (mazes) and puzzle (8-puzzle)
//	cmd/        - the blindsearch CLI for YAML problem files
//
// Quick ASCII example, the line A─B─C─D from A to D:
//
//	bfs:            A→B→C→D  expanded 3, generated 4
//	iddfs (max 3):  A→B→C→D  expanded 0+1+2+3 = 6
//	bidirectional:  A→B→C→D  grown from both A and D
//
//	go get github.com/katalvlaran/blindsearch
package blindsearch
