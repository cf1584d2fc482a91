package search

import (
	"context"
	"fmt"
	"log/slog"
)

// Option configures a search call via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// search starts.
type Option func(*Options)

// Options holds parameters and callbacks shared by every algorithm.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per loop iteration.
	Ctx context.Context

	// Logger, if non-nil, receives one Debug record per finished search.
	Logger *slog.Logger

	// MaxExpansions, if > 0, aborts the search with ErrExpansionLimit once
	// that many states have been expanded. 0 means no limit.
	MaxExpansions int

	// Reopen lets depth-limited DFS push a generated state again when it is
	// reached at a strictly shallower depth. Other algorithms ignore it.
	Reopen bool

	// onExpand and onGenerate hold func(S) values; their type is checked
	// against the problem's state type by NewTracker.
	onExpand   any
	onGenerate any

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context and nothing
// else set.
func DefaultOptions() Options {
	return Options{
		Ctx: context.Background(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes search summaries to l at Debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMaxExpansions caps the number of expanded states.
//
//	n > 0: stop with ErrExpansionLimit after n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithReopen makes depth-limited DFS, and so every IDDFS pass, re-parent
// and push again a state generated at a strictly shallower depth than
// before. The default is first discovery: a generated state is never
// pushed twice.
func WithReopen() Option {
	return func(o *Options) {
		o.Reopen = true
	}
}

// WithOnExpand registers fn to run each time a state is expanded.
// fn must accept the problem's state type.
func WithOnExpand[S comparable](fn func(s S)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onExpand = fn
		}
	}
}

// WithOnGenerate registers fn to run each time a state enters a frontier,
// the initial state included. fn must accept the problem's state type.
func WithOnGenerate[S comparable](fn func(s S)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onGenerate = fn
		}
	}
}

// Apply folds opts over DefaultOptions and returns the first recorded error.
func Apply(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}
