package problemfile

import (
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/blindsearch/bfs"
	"github.com/katalvlaran/blindsearch/bidirectional"
	"github.com/katalvlaran/blindsearch/dfs"
	"github.com/katalvlaran/blindsearch/search"
	"github.com/katalvlaran/blindsearch/ucs"
)

// Algorithm names one of the search algorithms.
type Algorithm string

const (
	BFS           Algorithm = "bfs"
	DFS           Algorithm = "dfs"
	IDDFS         Algorithm = "iddfs"
	UCS           Algorithm = "ucs"
	Bidirectional Algorithm = "bidirectional"
)

// Algorithms lists every algorithm in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{BFS, DFS, IDDFS, UCS, Bidirectional}
}

// ParseAlgorithm accepts an algorithm name, case-insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Algorithms() {
		if a == known {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want one of %v)", ErrUnknownAlgorithm, name, Algorithms())
}

// DepthUnset leaves the depth to the algorithm: no limit for DFS and the
// file's max_depth (or DefaultMaxDepth) for IDDFS.
const DepthUnset = -1

// Params tunes one run.
type Params struct {
	// Depth is the DFS limit or the IDDFS bound; DepthUnset for defaults.
	Depth int
	// Options are passed to the algorithm unchanged.
	Options []search.Option
}

// Outcome is a search.Result with states and actions rendered as strings,
// so that results of differently typed problems can be compared.
type Outcome struct {
	Algorithm   Algorithm
	Found       bool
	State       string
	Actions     []string
	PathCost    float64
	Expanded    int
	Generated   int
	MaxFrontier int
	Elapsed     time.Duration
	// Picture is a kind-specific drawing of the solution, if any.
	Picture string
}

// runFunc is the type-erased entry point of an Instance.
type runFunc func(algo Algorithm, depth int, opts []search.Option) (Outcome, error)

// runner binds every algorithm to p. goal is the target of bidirectional
// search (hasGoal false when unknown); picture, if non-nil, draws a path.
func runner[S comparable, A any](p search.Problem[S, A], goal S, hasGoal bool, picture func([]A) string) runFunc {
	return func(algo Algorithm, depth int, opts []search.Option) (Outcome, error) {
		var (
			res search.Result[S, A]
			err error
		)
		switch algo {
		case BFS:
			res, err = bfs.Search(p, opts...)
		case DFS:
			res, err = dfs.Search(p, depth, opts...)
		case IDDFS:
			res, err = dfs.IterativeDeepening(p, depth, opts...)
		case UCS:
			res, err = ucs.Search(p, opts...)
		case Bidirectional:
			if !hasGoal {
				return Outcome{Algorithm: algo}, ErrNoGoalState
			}
			res, err = bidirectional.Search(p, goal, opts...)
		default:
			return Outcome{Algorithm: algo}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
		}

		out := Outcome{
			Algorithm:   algo,
			Found:       res.Found,
			Actions:     make([]string, len(res.Actions)),
			PathCost:    res.PathCost,
			Expanded:    res.Expanded,
			Generated:   res.Generated,
			MaxFrontier: res.MaxFrontier,
			Elapsed:     res.Elapsed,
		}
		for i, a := range res.Actions {
			out.Actions[i] = fmt.Sprint(a)
		}
		if res.Found {
			out.State = fmt.Sprint(res.State)
			if picture != nil {
				out.Picture = picture(res.Actions)
			}
		}

		return out, err
	}
}
