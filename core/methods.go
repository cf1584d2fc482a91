// File: methods.go
// Role: Vertex and edge lifecycle plus neighborhood queries.
// Determinism:
//   - Vertices() is sorted lexicographically.
//   - Edges(), Neighbors() and InNeighbors() follow edge insertion order.
// Concurrency:
//   - Mutations take the write lock; queries take the read lock and return
//     fresh slices.

package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// AddVertex inserts id if absent. Adding an existing vertex is a no-op.
// Complexity: O(1)
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.vertices[id] = struct{}{}

	return nil
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge creates an edge from→to, adding missing endpoints, and returns
// its ID.
//
// Errors:
//   - ErrEmptyVertexID if either endpoint is empty.
//   - ErrNegativeWeight if weight is negative, NaN or infinite.
//   - ErrBadWeight if the graph is unweighted and weight != 0.
//   - ErrMultiEdgeNotAllowed if from and to are already joined in this
//     direction (either direction for undirected graphs).
//
// Complexity: O(d) where d is the out-degree of from.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", fmt.Errorf("%w: %s→%s weight=%v", ErrNegativeWeight, from, to, weight)
	}
	if !g.weighted && weight != 0 {
		return "", fmt.Errorf("%w: %s→%s weight=%v", ErrBadWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// a step between two states must name exactly one edge
	for _, e := range g.out[from] {
		if e.Opposite(from) == to {
			return "", fmt.Errorf("%w: %s→%s already joined by %s", ErrMultiEdgeNotAllowed, from, to, e.ID)
		}
	}

	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}

	g.nextEdgeID++
	e := &Edge{
		ID:       "e" + strconv.FormatUint(g.nextEdgeID, 10),
		From:     from,
		To:       to,
		Weight:   weight,
		Directed: g.directed,
		seq:      g.nextEdgeID,
	}
	g.edges[e.ID] = e
	g.out[from] = append(g.out[from], e)
	g.in[to] = append(g.in[to], e)
	// mirror undirected edges; a self-loop is listed once
	if !e.Directed && from != to {
		g.out[to] = append(g.out[to], e)
		g.in[from] = append(g.in[from], e)
	}

	return e.ID, nil
}

// Neighbors returns the edges that can be followed out of id, in insertion
// order. For undirected edges use Edge.Opposite to find the far endpoint.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d)
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	return g.adjacent(id, g.out)
}

// InNeighbors returns the edges that can be followed into id, in insertion
// order. In undirected graphs this equals Neighbors.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d)
func (g *Graph) InNeighbors(id string) ([]*Edge, error) {
	return g.adjacent(id, g.in)
}

func (g *Graph) adjacent(id string, index map[string][]*Edge) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	edges := make([]*Edge, len(index[id]))
	copy(edges, index[id])

	return edges, nil
}

// NeighborIDs returns the unique vertex IDs reachable over one edge from id,
// sorted lexicographically.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		nbr := e.Opposite(id)
		if _, dup := seen[nbr]; dup {
			continue
		}
		seen[nbr] = struct{}{}
		ids = append(ids, nbr)
	}
	sort.Strings(ids)

	return ids, nil
}

// Vertices returns all vertex IDs sorted lexicographically.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns all edges in insertion order.
// Complexity: O(E log E)
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	edges := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].seq < edges[j].seq })

	return edges
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns |E|; undirected edges count once.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether non-zero weights are permitted.
func (g *Graph) Weighted() bool { return g.weighted }

// String summarises the graph for logs.
func (g *Graph) String() string {
	return fmt.Sprintf("Graph(directed=%t, weighted=%t, |V|=%d, |E|=%d)",
		g.directed, g.weighted, g.VertexCount(), g.EdgeCount())
}
