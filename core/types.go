// File: types.go
// Role: Edge, Graph, GraphOption, sentinel errors and the NewGraph
// constructor.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrNegativeWeight      - negative, NaN or infinite weight.
//	ErrMultiEdgeNotAllowed - a second edge between the same endpoints.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrNegativeWeight indicates a weight that cannot serve as a step cost.
	ErrNegativeWeight = errors.New("core: weight must be a finite non-negative number")

	// ErrMultiEdgeNotAllowed indicates an attempt to add a parallel edge.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge represents a connection between two vertices.
//
// Each Edge has a unique ID, endpoints From→To and a Weight. Undirected
// edges are stored once and reported from both endpoints.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of traversing the edge; 0 in unweighted graphs.
	Weight float64

	// Directed reports whether the edge is one-way.
	Directed bool

	// seq is the insertion sequence used for deterministic ordering.
	seq uint64
}

// Opposite returns the endpoint of e that is not id. For self-loops, and
// for ids that are not an endpoint, it returns e.To.
func (e *Edge) Opposite(id string) string {
	if e.To == id {
		return e.From
	}

	return e.To
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of all edges.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// Graph is an in-memory adjacency-list graph.
//
// mu guards every map and the edge counter. Edges are kept in insertion
// order so neighborhoods are reported deterministically.
type Graph struct {
	mu sync.RWMutex

	directed bool
	weighted bool

	nextEdgeID uint64
	vertices   map[string]struct{}
	edges      map[string]*Edge

	// out[v] lists edges leaving v (both endpoints for undirected edges);
	// in[v] lists edges entering v.
	out map[string][]*Edge
	in  map[string][]*Edge
}

// NewGraph creates an empty Graph. By default it is undirected and
// unweighted.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]struct{}),
		edges:    make(map[string]*Edge),
		out:      make(map[string][]*Edge),
		in:       make(map[string][]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
