package ucs_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blindsearch/bfs"
	"github.com/katalvlaran/blindsearch/core"
	"github.com/katalvlaran/blindsearch/dfs"
	"github.com/katalvlaran/blindsearch/problems/route"
	"github.com/katalvlaran/blindsearch/search"
	"github.com/katalvlaran/blindsearch/ucs"
)

// tableProblem is a directed problem given as an explicit successor table.
// Actions are "from->to".
type tableProblem struct {
	start string
	goal  string
	edges map[string][]search.Step[string, string]
}

func (p tableProblem) InitialState() string { return p.start }
func (p tableProblem) IsGoal(s string) bool { return s == p.goal }
func (p tableProblem) Successors(s string) []search.Step[string, string] {
	return p.edges[s]
}

func step(from, to string, cost float64) search.Step[string, string] {
	return search.Step[string, string]{Action: from + "->" + to, State: to, Cost: cost}
}

// weighted builds a directed weighted route problem from (from, to, w) triples.
func weighted(t *testing.T, start, goal string, edges [][3]any) search.Problem[string, route.Move] {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, e := range edges {
		_, err := g.AddEdge(e[0].(string), e[1].(string), e[2].(float64))
		require.NoError(t, err)
	}
	p, err := route.New(g, start, goal)
	require.NoError(t, err)

	return p
}

func TestSearch_Errors(t *testing.T) {
	_, err := ucs.Search[string, string](nil)
	require.ErrorIs(t, err, search.ErrNilProblem)

	p := tableProblem{start: "A", goal: "C", edges: map[string][]search.Step[string, string]{
		"A": {step("A", "B", 1)},
		"B": {step("B", "C", -2)},
	}}
	res, err := ucs.Search[string, string](p)
	require.ErrorIs(t, err, search.ErrNegativeCost)
	assert.False(t, res.Found)
	assert.True(t, math.IsInf(res.PathCost, 1))

	p.edges["B"] = []search.Step[string, string]{step("B", "C", math.NaN())}
	_, err = ucs.Search[string, string](p)
	require.ErrorIs(t, err, search.ErrNegativeCost)

	_, err = ucs.Search[string, string](p, search.WithMaxExpansions(-3))
	require.ErrorIs(t, err, search.ErrOptionViolation)
}

// TestSearch_LineGraph is scenario 1 on the unit-cost line A–B–C–D.
func TestSearch_LineGraph(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("C", "D", 0)
	p, err := route.New(g, "A", "D")
	require.NoError(t, err)

	res, err := ucs.Search[string, route.Move](p)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Len(t, res.Actions, 3)
	assert.Equal(t, 3.0, res.PathCost)
}

// TestSearch_PrefersCheaperDetour is scenario 2: A→B→D (2) beats A→D (5).
func TestSearch_PrefersCheaperDetour(t *testing.T) {
	p := weighted(t, "A", "D", [][3]any{
		{"A", "B", 1.0},
		{"B", "D", 1.0},
		{"A", "D", 5.0},
	})

	res, err := ucs.Search(p)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []route.Move{{From: "A", To: "B"}, {From: "B", To: "D"}}, res.Actions)
	assert.Equal(t, 2.0, res.PathCost)
	assert.Equal(t, 2, res.Expanded)
	assert.Equal(t, 4, res.Generated) // A, B, D@5, D@2
	assert.Equal(t, 2, res.MaxFrontier)

	hops, err := bfs.Search(p)
	require.NoError(t, err)
	assert.Equal(t, 1, hops.Depth())
	assert.Equal(t, 5.0, hops.PathCost)
}

// TestSearch_ParallelEdgeRejected keeps the reported cost equal to the cost
// of replaying the returned moves: a cheaper second A→B edge cannot be added
// behind the first one.
func TestSearch_ParallelEdgeRejected(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, err := g.AddEdge("A", "B", 5)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 1)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	rp, err := route.New(g, "A", "B")
	require.NoError(t, err)
	var p search.Problem[string, route.Move] = rp

	res, err := ucs.Search(p)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 5.0, res.PathCost)

	end, cost, err := search.Replay(p, res.Actions, nil)
	require.NoError(t, err)
	assert.Equal(t, "B", end)
	assert.Equal(t, res.PathCost, cost)
}

// TestSearch_StaleEntriesNotExpanded pops a superseded entry for C and
// checks that it is skipped silently.
func TestSearch_StaleEntriesNotExpanded(t *testing.T) {
	p := weighted(t, "A", "G", [][3]any{
		{"A", "B", 1.0},
		{"A", "C", 5.0},
		{"B", "C", 1.0},
		{"C", "G", 10.0},
	})

	var expanded []string
	res, err := ucs.Search(p, search.WithOnExpand(func(s string) { expanded = append(expanded, s) }))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 12.0, res.PathCost)
	assert.Equal(t, []string{"A", "B", "C"}, expanded)
	assert.Equal(t, 3, res.Expanded)
	assert.Equal(t, 5, res.Generated)
}

// TestSearch_TieBreakDiscoveryOrder expands equal-cost states first-come first-served.
func TestSearch_TieBreakDiscoveryOrder(t *testing.T) {
	p := tableProblem{start: "A", goal: "G", edges: map[string][]search.Step[string, string]{
		"A": {step("A", "X", 1), step("A", "Y", 1)},
		"X": {step("X", "G", 1)},
		"Y": {step("Y", "G", 1)},
	}}
	res, err := ucs.Search[string, string](p)
	require.NoError(t, err)
	assert.Equal(t, []string{"A->X", "X->G"}, res.Actions)
}

// TestSearch_ZeroCostEdges handles free transitions and a free goal.
func TestSearch_ZeroCostEdges(t *testing.T) {
	p := tableProblem{start: "A", goal: "C", edges: map[string][]search.Step[string, string]{
		"A": {step("A", "B", 0), step("A", "C", 3)},
		"B": {step("B", "C", 0)},
	}}
	res, err := ucs.Search[string, string](p)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.PathCost)
	assert.Equal(t, []string{"A->B", "B->C"}, res.Actions)
}

func TestSearch_StartIsGoalAndUnreachable(t *testing.T) {
	p := tableProblem{start: "A", goal: "A"}
	res, err := ucs.Search[string, string](p)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Empty(t, res.Actions)
	assert.NotNil(t, res.Actions)
	assert.Zero(t, res.PathCost)
	assert.Zero(t, res.Expanded)

	p = tableProblem{start: "A", goal: "Z", edges: map[string][]search.Step[string, string]{
		"A": {step("A", "B", 1)},
	}}
	res, err = ucs.Search[string, string](p)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Empty(t, res.Actions)
	assert.True(t, math.IsInf(res.PathCost, 1))
	assert.Equal(t, 2, res.Expanded)
}

func TestSearch_StoppedEarly(t *testing.T) {
	p := weighted(t, "A", "G", [][3]any{
		{"A", "B", 1.0},
		{"B", "C", 1.0},
		{"C", "G", 1.0},
	})
	res, err := ucs.Search(p, search.WithMaxExpansions(1))
	require.ErrorIs(t, err, search.ErrExpansionLimit)
	assert.Equal(t, 1, res.Expanded)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ucs.Search(p, search.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestSearch_Optimality compares UCS against BFS and DFS on random
// weighted graphs: no other algorithm may report a cheaper path.
func TestSearch_Optimality(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 25; trial++ {
		g := core.NewGraph(core.WithWeighted())
		const n = 12
		for i := 0; i < n; i++ {
			_ = g.AddVertex(fmt.Sprintf("v%d", i))
		}
		for i := 0; i < 30; i++ {
			u, v := rng.Intn(n), rng.Intn(n)
			if u == v {
				continue
			}
			_, err := g.AddEdge(fmt.Sprintf("v%d", u), fmt.Sprintf("v%d", v), float64(1+rng.Intn(9)))
			if errors.Is(err, core.ErrMultiEdgeNotAllowed) {
				continue
			}
			require.NoError(t, err)
		}
		rp, err := route.New(g, "v0", fmt.Sprintf("v%d", n-1))
		require.NoError(t, err)
		var p search.Problem[string, route.Move] = rp

		best, err := ucs.Search(p)
		require.NoError(t, err)
		others := []search.Result[string, route.Move]{}
		r, err := bfs.Search(p)
		require.NoError(t, err)
		others = append(others, r)
		r, err = dfs.Search(p, dfs.NoLimit)
		require.NoError(t, err)
		others = append(others, r)

		for _, o := range others {
			require.Equal(t, best.Found, o.Found, "trial %d", trial)
			if best.Found {
				require.LessOrEqual(t, best.PathCost, o.PathCost, "trial %d", trial)
			}
		}
		if best.Found {
			end, cost, err := search.Replay(p, best.Actions, nil)
			require.NoError(t, err)
			require.True(t, p.IsGoal(end))
			require.InDelta(t, best.PathCost, cost, 1e-9)
		}
	}
}
