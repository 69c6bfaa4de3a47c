package platform

import (
	"github.com/katalvlaran/snowops/cycle"
	"github.com/katalvlaran/snowops/gridgraph"
)

// SpinOption configures Spin.
type SpinOption func(*spinOptions)

type spinOptions struct {
	tiltCache bool
}

// WithTiltCache memoizes single tilts keyed by direction and board, on top
// of the per-cycle memo that Spin always keeps.
func WithTiltCache() SpinOption {
	return func(o *spinOptions) { o.tiltCache = true }
}

// SpinReport describes a Spin run.
type SpinReport struct {
	Cycle cycle.Report
	// Tilt is zero unless WithTiltCache was given.
	Tilt cycle.Stats
}

type tiltKey struct {
	dir   gridgraph.Direction
	board string
}

// Spin returns the board after n spin cycles; p itself is not modified.
func Spin(p *Platform, n int, opts ...SpinOption) (*Platform, SpinReport) {
	var o spinOptions
	for _, opt := range opts {
		opt(&o)
	}

	var tilts *cycle.Memo[tiltKey, string]
	if o.tiltCache {
		tilts = cycle.NewMemo[tiltKey, string]()
	}

	step := func(cur *Platform) *Platform {
		next := cur.Clone()
		if tilts == nil {
			next.SpinCycle()
			return next
		}
		board := next.String()
		for _, d := range CycleOrder {
			board = tilts.GetOrCompute(tiltKey{d, board}, func() string {
				next.load(board)
				next.Tilt(d)
				return next.String()
			})
		}
		next.load(board)
		return next
	}

	out, rep := cycle.Repeat(p.Clone(), n, (*Platform).String, step)
	sr := SpinReport{Cycle: rep}
	if tilts != nil {
		sr.Tilt = tilts.Stats()
	}
	return out, sr
}
