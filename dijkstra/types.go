// Package dijkstra defines core types and configuration options
// for cost-relaxation search over an implicit state space.
//
// Errors (sentinel):
//
//	– ErrNoStart         if no start state is provided.
//	– ErrNilTransition   if the transition function is nil.
//	– ErrNegativeCost    if a negative start or edge cost is encountered.
//	– ErrUnreachable     if no goal state can be reached.
//	– ErrBadMaxCost      if MaxCost < 0.
//	– ErrBadRunBounds    if run-length bounds are inconsistent.
//	– ErrBadCell         if a heat-loss grid cell is not a digit.
package dijkstra

import (
	"context"
	"errors"
	"math"
)

// Sentinel errors returned by the search.
var (
	// ErrNoStart indicates that no start state was provided.
	ErrNoStart = errors.New("dijkstra: at least one start state is required")

	// ErrNilTransition indicates that a nil transition or goal function was passed.
	ErrNilTransition = errors.New("dijkstra: transition and goal functions are required")

	// ErrNegativeCost indicates that a negative cost was encountered.
	ErrNegativeCost = errors.New("dijkstra: negative cost encountered")

	// ErrUnreachable indicates that no goal state is reachable from the starts.
	// The search never reports a sentinel cost in its place.
	ErrUnreachable = errors.New("dijkstra: goal is unreachable")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")

	// ErrBadRunBounds indicates Min/Max run lengths that admit no move.
	ErrBadRunBounds = errors.New("dijkstra: run bounds must satisfy 0 <= Min <= Max and Max >= 1")

	// ErrBadCell indicates a heat-loss grid cell that is not a digit.
	ErrBadCell = errors.New("dijkstra: heat-loss cell must be a digit")
)

// Start seeds the search with a state and the cost already paid to reach it.
type Start[S comparable] struct {
	State S
	Cost  int64
}

// Edge is one outgoing transition: the successor state and the incremental cost.
type Edge[S comparable] struct {
	To   S
	Cost int64
}

// Transition maps a state to its outgoing edges. Moves that leave the grid
// or violate a constraint are omitted, never reported as errors.
type Transition[S comparable] func(S) []Edge[S]

// Options configures the behavior of the search.
//
// Ctx     – cancellation; checked once per settled state.
// MaxCost – states whose cost would exceed this are pruned.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
type Options struct {
	Ctx     context.Context
	MaxCost int64
	err     error
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxCost sets a maximum cost threshold. States whose cost would
// exceed it are never explored; if every goal lies beyond it the search
// reports ErrUnreachable. Negative values surface ErrBadMaxCost.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = ErrBadMaxCost
			return
		}
		o.MaxCost = max
	}
}

// DefaultOptions returns an Options struct initialized with:
//   - Ctx:     context.Background()
//   - MaxCost: math.MaxInt64 (no cost limit; explore all reachable).
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		MaxCost: math.MaxInt64,
	}
}

// Result reports the cheapest goal state found.
type Result[S comparable] struct {
	Cost    int64 // minimum accumulated cost
	Goal    S     // the goal state that achieved Cost
	Settled int   // number of states finalized before the goal was popped
}
