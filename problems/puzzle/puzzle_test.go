package puzzle_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blindsearch/bfs"
	"github.com/katalvlaran/blindsearch/bidirectional"
	"github.com/katalvlaran/blindsearch/dfs"
	"github.com/katalvlaran/blindsearch/problems/puzzle"
	"github.com/katalvlaran/blindsearch/search"
	"github.com/katalvlaran/blindsearch/ucs"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want puzzle.Board
		err  error
	}{
		{"1,2,3|4,5,6|7,8,_", puzzle.Goal(), nil},
		{"123456780", puzzle.Goal(), nil},
		{"8 1 3\n4 0 2\n7 6 5", puzzle.Board{8, 1, 3, 4, 0, 2, 7, 6, 5}, nil},
		{"12345678", puzzle.Board{}, puzzle.ErrInvalidBoard},
		{"1234567800", puzzle.Board{}, puzzle.ErrInvalidBoard},
		{"123456788", puzzle.Board{}, puzzle.ErrInvalidBoard},
		{"12345678x", puzzle.Board{}, puzzle.ErrInvalidBoard},
	}
	for _, tc := range cases {
		got, err := puzzle.Parse(tc.in)
		if !errors.Is(err, tc.err) {
			t.Errorf("Parse(%q) error = %v; want %v", tc.in, err, tc.err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v; want %v", tc.in, got, tc.want)
		}
	}
	assert.Equal(t, "1,2,3|4,5,6|7,8,_", puzzle.Goal().String())
}

func TestNew(t *testing.T) {
	_, err := puzzle.New(puzzle.Board{2, 1, 3, 4, 5, 6, 7, 8, 0}, puzzle.Goal())
	require.ErrorIs(t, err, puzzle.ErrUnsolvable)

	_, err = puzzle.New(puzzle.Board{1, 1, 3, 4, 5, 6, 7, 8, 0}, puzzle.Goal())
	require.ErrorIs(t, err, puzzle.ErrInvalidBoard)

	_, err = puzzle.New(puzzle.Goal(), puzzle.Board{})
	require.ErrorIs(t, err, puzzle.ErrInvalidBoard)
}

func TestApply(t *testing.T) {
	g := puzzle.Goal() // blank in the bottom-right corner
	_, ok := g.Apply(puzzle.Down)
	assert.False(t, ok)
	_, ok = g.Apply(puzzle.Right)
	assert.False(t, ok)

	up, ok := g.Apply(puzzle.Up)
	require.True(t, ok)
	assert.Equal(t, puzzle.Board{1, 2, 3, 4, 5, 0, 7, 8, 6}, up)
	back, ok := up.Apply(puzzle.Up.Opposite())
	require.True(t, ok)
	assert.Equal(t, g, back)

	assert.Equal(t, puzzle.Right, puzzle.Left.Opposite())
	assert.Equal(t, "Move(7)", puzzle.Move(7).String())
}

func TestSearch_OneMove(t *testing.T) {
	p, err := puzzle.New(puzzle.Board{1, 2, 3, 4, 5, 6, 7, 0, 8}, puzzle.Goal())
	require.NoError(t, err)

	res, err := bfs.Search[puzzle.Board, puzzle.Move](p)
	require.NoError(t, err)
	assert.Equal(t, []puzzle.Move{puzzle.Right}, res.Actions)
	assert.Equal(t, 1.0, res.PathCost)
}

// TestSearch_Scrambled solves random scrambles with every algorithm and
// checks that the depth-optimal ones agree.
func TestSearch_Scrambled(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 5; trial++ {
		start := puzzle.Scramble(puzzle.Goal(), 10, rng)
		rp, err := puzzle.New(start, puzzle.Goal())
		require.NoError(t, err)
		var p search.Problem[puzzle.Board, puzzle.Move] = rp

		short, err := bfs.Search(p)
		require.NoError(t, err)
		require.True(t, short.Found)
		require.LessOrEqual(t, short.Depth(), 10)

		cheap, err := ucs.Search(p)
		require.NoError(t, err)
		require.Equal(t, float64(short.Depth()), cheap.PathCost)

		deep, err := dfs.IterativeDeepening(p, 10, search.WithReopen())
		require.NoError(t, err)
		require.Equal(t, short.Depth(), deep.Depth(), "trial %d", trial)

		first, err := dfs.IterativeDeepening(p, 10)
		require.NoError(t, err)
		if first.Found {
			require.GreaterOrEqual(t, first.Depth(), short.Depth(), "trial %d", trial)
			end, _, err := search.Replay(p, first.Actions, nil)
			require.NoError(t, err)
			require.Equal(t, puzzle.Goal(), end)
		}

		meet, err := bidirectional.Search(p, puzzle.Goal())
		require.NoError(t, err)
		require.True(t, meet.Found)
		end, _, err := search.Replay(p, meet.Actions, nil)
		require.NoError(t, err)
		require.Equal(t, puzzle.Goal(), end)
	}
}
