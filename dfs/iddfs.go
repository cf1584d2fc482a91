package dfs

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/blindsearch/search"
)

// IterativeDeepening drives Search with depth limits 0, 1, ..., maxDepth.
//
// Expanded and Generated are summed over all passes and MaxFrontier is the
// largest peak of any pass. The first successful pass supplies State,
// Actions and PathCost. If no pass up to maxDepth succeeds the result is
// not found with the accumulated totals and +Inf cost.
//
// WithMaxExpansions caps the total across passes. Hooks fire for every
// pass, so shallow states are reported repeatedly. WithReopen applies to
// each pass.
//
// Returns search.ErrOptionViolation if maxDepth < 0.
func IterativeDeepening[S comparable, A any](p search.Problem[S, A], maxDepth int, opts ...search.Option) (search.Result[S, A], error) {
	if p == nil {
		return search.Result[S, A]{}, search.ErrNilProblem
	}
	if maxDepth < 0 {
		return search.Result[S, A]{}, fmt.Errorf("%w: maxDepth cannot be negative (%d)", search.ErrOptionViolation, maxDepth)
	}
	o, err := search.Apply(opts...)
	if err != nil {
		return search.Result[S, A]{}, err
	}

	started := time.Now()
	var total search.Stats
	finish := func(res search.Result[S, A]) search.Result[S, A] {
		res.Expanded = total.Expanded
		res.Generated = total.Generated
		res.MaxFrontier = total.MaxFrontier
		res.Elapsed = time.Since(started)
		if o.Logger != nil {
			o.Logger.Debug("search finished",
				slog.String("algorithm", "iddfs"),
				slog.Bool("found", res.Found),
				slog.Int("expanded", res.Expanded),
				slog.Int("generated", res.Generated),
				slog.Int("max_frontier", res.MaxFrontier),
				slog.Duration("elapsed", res.Elapsed),
			)
		}
		return res
	}

	for limit := 0; limit <= maxDepth; limit++ {
		passOpts := opts
		if o.MaxExpansions > 0 {
			remaining := o.MaxExpansions - total.Expanded
			if remaining <= 0 {
				return finish(notFound(search.Result[S, A]{})),
					fmt.Errorf("%w: %d states expanded", search.ErrExpansionLimit, total.Expanded)
			}
			passOpts = append(append([]search.Option(nil), opts...), search.WithMaxExpansions(remaining))
		}

		res, err := run(p, limit, "dfs", passOpts...)
		total.Merge(search.Stats{
			Expanded:    res.Expanded,
			Generated:   res.Generated,
			MaxFrontier: res.MaxFrontier,
		})
		if err != nil {
			return finish(notFound(res)), err
		}
		if res.Found {
			return finish(res), nil
		}
	}

	return finish(notFound(search.Result[S, A]{})), nil
}

func notFound[S comparable, A any](res search.Result[S, A]) search.Result[S, A] {
	var zero S
	res.Found = false
	res.State = zero
	res.Actions = []A{}
	res.PathCost = math.Inf(1)

	return res
}
