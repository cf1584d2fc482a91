package search

import (
	"fmt"
	"log/slog"
	"time"
)

// Stats holds the effort counters reported in a Result.
type Stats struct {
	Expanded    int
	Generated   int
	MaxFrontier int
}

// ObserveFrontier records size as a candidate peak frontier size.
func (s *Stats) ObserveFrontier(size int) {
	if size > s.MaxFrontier {
		s.MaxFrontier = size
	}
}

// Merge adds the counters of other into s, keeping the larger peak.
func (s *Stats) Merge(other Stats) {
	s.Expanded += other.Expanded
	s.Generated += other.Generated
	s.ObserveFrontier(other.MaxFrontier)
}

// Tracker is the per-call search context: counters, options, hooks and
// timing. Algorithms pass it explicitly into their expansion steps instead
// of capturing counters in closures.
type Tracker[S comparable] struct {
	Stats

	algo       string
	opts       Options
	onExpand   func(S)
	onGenerate func(S)
	started    time.Time
	elapsed    time.Duration
	done       bool
}

// NewTracker applies opts and starts the clock for one run of algo.
// Returns ErrOptionViolation for invalid options or hooks whose parameter
// type does not match S.
func NewTracker[S comparable](algo string, opts ...Option) (*Tracker[S], error) {
	o, err := Apply(opts...)
	if err != nil {
		return nil, err
	}
	t := &Tracker[S]{algo: algo, opts: o}
	if o.onExpand != nil {
		fn, ok := o.onExpand.(func(S))
		if !ok {
			return nil, fmt.Errorf("%w: OnExpand hook %T does not accept %T", ErrOptionViolation, o.onExpand, *new(S))
		}
		t.onExpand = fn
	}
	if o.onGenerate != nil {
		fn, ok := o.onGenerate.(func(S))
		if !ok {
			return nil, fmt.Errorf("%w: OnGenerate hook %T does not accept %T", ErrOptionViolation, o.onGenerate, *new(S))
		}
		t.onGenerate = fn
	}
	t.started = time.Now()

	return t, nil
}

// Options returns the resolved options of this run.
func (t *Tracker[S]) Options() Options {
	return t.opts
}

// Check reports context cancellation.
func (t *Tracker[S]) Check() error {
	select {
	case <-t.opts.Ctx.Done():
		return t.opts.Ctx.Err()
	default:
		return nil
	}
}

// Observe records the current frontier size.
func (t *Tracker[S]) Observe(frontier int) {
	t.ObserveFrontier(frontier)
}

// Expand counts s as expanded. It fails with ErrExpansionLimit, without
// counting s, once the configured cap has been reached.
func (t *Tracker[S]) Expand(s S) error {
	if t.opts.MaxExpansions > 0 && t.Expanded >= t.opts.MaxExpansions {
		return fmt.Errorf("%w: %d states expanded", ErrExpansionLimit, t.Expanded)
	}
	t.Expanded++
	if t.onExpand != nil {
		t.onExpand(s)
	}

	return nil
}

// Generate counts s as inserted into a frontier.
func (t *Tracker[S]) Generate(s S) {
	t.Generated++
	if t.onGenerate != nil {
		t.onGenerate(s)
	}
}

// finish stops the clock and logs the run summary once.
func (t *Tracker[S]) finish(found bool) {
	if t.done {
		return
	}
	t.done = true
	t.elapsed = time.Since(t.started)
	if t.opts.Logger == nil {
		return
	}
	t.opts.Logger.Debug("search finished",
		slog.String("algorithm", t.algo),
		slog.Bool("found", found),
		slog.Int("expanded", t.Expanded),
		slog.Int("generated", t.Generated),
		slog.Int("max_frontier", t.MaxFrontier),
		slog.Duration("elapsed", t.elapsed),
	)
}
