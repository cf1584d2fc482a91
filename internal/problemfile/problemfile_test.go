package problemfile_test

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blindsearch/core"
	"github.com/katalvlaran/blindsearch/internal/problemfile"
	"github.com/katalvlaran/blindsearch/problems/puzzle"
	"github.com/katalvlaran/blindsearch/problems/route"
	"github.com/katalvlaran/blindsearch/search"
)

func load(t *testing.T, name string) *problemfile.Instance {
	t.Helper()
	spec, err := problemfile.Load(filepath.Join("testdata", name))
	require.NoError(t, err)
	in, err := problemfile.Build(spec)
	require.NoError(t, err)

	return in
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown kind", "kind: sokoban\n", problemfile.ErrUnknownKind},
		{"missing section", "kind: grid\n", problemfile.ErrMissingSection},
		{"wrong section", "kind: puzzle\nroute: {start: A, goals: [A]}\n", problemfile.ErrMissingSection},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := problemfile.Decode([]byte(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := problemfile.Decode([]byte("kind: puzzle\npuzzle: {start: '1,2,3|4,5,6|7,8,_'}\ncolour: red\n"))
	require.Error(t, err, "unknown fields are rejected")

	_, err = problemfile.Decode([]byte("kind: puzzle\nmax_depth: -2\npuzzle: {start: '1,2,3|4,5,6|7,8,_'}\n"))
	require.Error(t, err)
}

func TestMarshal_RoundTrip(t *testing.T) {
	spec, err := problemfile.Load(filepath.Join("testdata", "australia.yaml"))
	require.NoError(t, err)
	data, err := spec.Marshal()
	require.NoError(t, err)
	again, err := problemfile.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, spec, again)
}

func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name string
		spec problemfile.Spec
		want error
	}{
		{
			name: "unknown goal",
			spec: problemfile.Spec{Kind: problemfile.KindRoute, Route: &problemfile.RouteSpec{
				Edges: []problemfile.EdgeSpec{{From: "A", To: "B"}}, Start: "A", Goals: []string{"Z"},
			}},
			want: route.ErrVertexNotFound,
		},
		{
			name: "weight on unweighted graph",
			spec: problemfile.Spec{Kind: problemfile.KindRoute, Route: &problemfile.RouteSpec{
				Edges: []problemfile.EdgeSpec{{From: "A", To: "B", Weight: 2}}, Start: "A", Goals: []string{"B"},
			}},
			want: core.ErrBadWeight,
		},
		{
			name: "parallel edge",
			spec: problemfile.Spec{Kind: problemfile.KindRoute, Route: &problemfile.RouteSpec{
				Directed: true, Weighted: true, Start: "A", Goals: []string{"B"},
				Edges: []problemfile.EdgeSpec{{From: "A", To: "B", Weight: 5}, {From: "A", To: "B", Weight: 1}},
			}},
			want: core.ErrMultiEdgeNotAllowed,
		},
		{
			name: "border triple",
			spec: problemfile.Spec{Kind: problemfile.KindColoring, Coloring: &problemfile.ColoringSpec{
				Borders: [][]string{{"A", "B", "C"}}, Colors: []int{1}, Order: []string{"A"},
			}},
			want: problemfile.ErrBadBorder,
		},
		{
			name: "unsolvable puzzle",
			spec: problemfile.Spec{Kind: problemfile.KindPuzzle, Puzzle: &problemfile.PuzzleSpec{
				Start: "2,1,3|4,5,6|7,8,_",
			}},
			want: puzzle.ErrUnsolvable,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := problemfile.Build(&tc.spec)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseAlgorithm(t *testing.T) {
	a, err := problemfile.ParseAlgorithm(" UCS ")
	require.NoError(t, err)
	assert.Equal(t, problemfile.UCS, a)

	_, err = problemfile.ParseAlgorithm("astar")
	require.ErrorIs(t, err, problemfile.ErrUnknownAlgorithm)
	assert.Len(t, problemfile.Algorithms(), 5)
}

func TestRun_Line(t *testing.T) {
	in := load(t, "line.yaml")
	assert.Equal(t, "line", in.Name)
	assert.Equal(t, "4 vertices, 3 edges", in.Describe)
	assert.Equal(t, problemfile.DefaultMaxDepth, in.MaxDepth)

	unset := problemfile.Params{Depth: problemfile.DepthUnset}
	want := []string{"A->B", "B->C", "C->D"}

	out, err := in.Run(problemfile.BFS, unset)
	require.NoError(t, err)
	assert.True(t, out.Found)
	assert.Equal(t, "D", out.State)
	assert.Equal(t, want, out.Actions)
	assert.Equal(t, 3.0, out.PathCost)
	assert.Equal(t, 3, out.Expanded)
	assert.Equal(t, 4, out.Generated)

	out, err = in.Run(problemfile.IDDFS, unset)
	require.NoError(t, err)
	assert.Equal(t, want, out.Actions)
	assert.Equal(t, 6, out.Expanded)

	out, err = in.Run(problemfile.DFS, problemfile.Params{Depth: 1})
	require.NoError(t, err)
	assert.False(t, out.Found)
	assert.Empty(t, out.State)
	assert.True(t, math.IsInf(out.PathCost, 1))

	out, err = in.Run(problemfile.Bidirectional, unset)
	require.NoError(t, err)
	assert.Equal(t, want, out.Actions)
	assert.True(t, math.IsNaN(out.PathCost))

	_, err = in.Run(problemfile.Algorithm("astar"), unset)
	require.ErrorIs(t, err, problemfile.ErrUnknownAlgorithm)
}

func TestRun_OptionsPassThrough(t *testing.T) {
	in := load(t, "line.yaml")
	out, err := in.Run(problemfile.BFS, problemfile.Params{
		Depth:   problemfile.DepthUnset,
		Options: []search.Option{search.WithMaxExpansions(1)},
	})
	require.ErrorIs(t, err, search.ErrExpansionLimit)
	assert.False(t, out.Found)
	assert.Equal(t, 1, out.Expanded)
}

func TestRun_Detour(t *testing.T) {
	in := load(t, "detour.yaml")
	unset := problemfile.Params{Depth: problemfile.DepthUnset}

	fewest, err := in.Run(problemfile.BFS, unset)
	require.NoError(t, err)
	assert.Equal(t, []string{"A->D"}, fewest.Actions)
	assert.Equal(t, 5.0, fewest.PathCost)

	cheapest, err := in.Run(problemfile.UCS, unset)
	require.NoError(t, err)
	assert.Equal(t, []string{"A->B", "B->D"}, cheapest.Actions)
	assert.Equal(t, 2.0, cheapest.PathCost)
}

func TestRun_Coloring(t *testing.T) {
	in := load(t, "australia.yaml")
	assert.Equal(t, 7, in.MaxDepth)
	for _, algo := range problemfile.Algorithms() {
		out, err := in.Run(algo, problemfile.Params{Depth: problemfile.DepthUnset})
		require.NoError(t, err, algo)
		assert.True(t, out.Found, algo)
		assert.Len(t, out.Actions, 7, algo)
	}

	spec, err := problemfile.Load(filepath.Join("testdata", "australia.yaml"))
	require.NoError(t, err)
	spec.Coloring.Goal = nil
	noGoal, err := problemfile.Build(spec)
	require.NoError(t, err)
	_, err = noGoal.Run(problemfile.Bidirectional, problemfile.Params{Depth: problemfile.DepthUnset})
	require.ErrorIs(t, err, problemfile.ErrNoGoalState)
}

func TestRun_GridPicture(t *testing.T) {
	in := load(t, "maze.yaml")
	assert.Equal(t, "3x2 grid", in.Describe)

	out, err := in.Run(problemfile.BFS, problemfile.Params{Depth: problemfile.DepthUnset})
	require.NoError(t, err)
	assert.Equal(t, []string{"E", "E", "S"}, out.Actions)
	assert.Equal(t, "2,1", out.State)
	assert.Equal(t, "S**\n#1G\n", out.Picture)
}

func TestRun_Puzzle(t *testing.T) {
	in := load(t, "puzzle.yaml")
	for _, algo := range []problemfile.Algorithm{problemfile.BFS, problemfile.UCS, problemfile.IDDFS, problemfile.Bidirectional} {
		out, err := in.Run(algo, problemfile.Params{Depth: problemfile.DepthUnset})
		require.NoError(t, err, algo)
		assert.Equal(t, []string{"Right", "Right"}, out.Actions, algo)
		assert.Equal(t, "1,2,3|4,5,6|7,8,_", out.State, algo)
	}
}

func TestSchema(t *testing.T) {
	s, err := problemfile.Schema()
	require.NoError(t, err)
	for _, key := range []string{"kind", "max_depth", "route", "coloring", "grid", "puzzle"} {
		assert.Contains(t, s.Properties, key)
	}

	data, err := problemfile.SchemaJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"blindsearch problem"`)
}
