// Package core provides the thread-safe in-memory Graph that backs the
// graph-shaped search problems of blindsearch (routes, constraint graphs).
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted); weights are float64 step
//     costs and must be finite and non-negative
//   - Self-loops; at most one edge per ordered pair of endpoints (per
//     unordered pair when undirected)
//   - Outgoing and incoming neighborhoods, so search problems can offer both
//     successors and predecessors
//   - A single sync.RWMutex; every query returns a fresh slice
//
// Core Methods:
//
//	AddVertex(id string) error                          // O(1)
//	HasVertex(id string) bool                           // O(1)
//	AddEdge(from, to string, weight float64) (string, error) // O(d)
//	Neighbors(id string) ([]*Edge, error)               // O(d), insertion order
//	InNeighbors(id string) ([]*Edge, error)             // O(d), insertion order
//	NeighborIDs(id string) ([]string, error)            // O(d log d), unique, sorted
//	Vertices() []string                                 // O(V log V)
//	Edges() []*Edge                                     // O(E log E)
//
// Determinism:
//
//	Neighborhoods follow edge insertion order, so a search problem built on
//	a Graph generates successors in the order edges were added.
//
// Errors:
//
//	ErrEmptyVertexID   – zero-length vertex ID
//	ErrVertexNotFound  – missing vertex
//	ErrBadWeight       – non-zero weight on unweighted graph
//	ErrNegativeWeight  – negative, NaN or infinite weight
//	ErrMultiEdgeNotAllowed – parallel edge between the same endpoints
package core
