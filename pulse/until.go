package pulse

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/snowops/dfs"
)

// PressesUntilLow resets the network and returns the number of presses
// after which target first receives a low signal. limit caps the number
// of presses simulated; ErrLimitExceeded is returned when it is reached.
// ctx is checked before every press.
func (n *Network) PressesUntilLow(ctx context.Context, target string, limit int) (int, error) {
	id, ok := n.index[target]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownModule, target)
	}
	n.Reset()

	if feeder, ok := n.independentFeeder(id); ok {
		Log.WithFields(logrus.Fields{
			"target": target,
			"feeder": n.modules[feeder].name,
			"inputs": len(n.modules[feeder].inputs),
		}).Debug("pulse: combining independent inputs by LCM")
		presses, err := n.untilAllInputsHigh(ctx, id, feeder, limit)
		if !errors.Is(err, errPhaseOffset) {
			return presses, err
		}
		Log.WithField("target", target).Debug("pulse: input periods are offset")
		n.Reset()
	}

	Log.WithField("target", target).Debug("pulse: simulating directly")
	return n.untilWatchedLow(ctx, id, limit)
}

// errPhaseOffset reports a feeder input whose high emissions do not repeat
// at multiples of the first one.
var errPhaseOffset = errors.New("pulse: input period has a phase offset")

// untilWatchedLow presses until target receives low.
func (n *Network) untilWatchedLow(ctx context.Context, target, limit int) (int, error) {
	prev := n.watch
	n.watch = target
	defer func() { n.watch = prev }()

	for n.presses < limit {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if n.Press().WatchedLow {
			return n.presses, nil
		}
	}
	return 0, fmt.Errorf("%w: %d presses", ErrLimitExceeded, limit)
}

// untilAllInputsHigh records, for every input of feeder, the presses in
// which it sends high to feeder. Once all inputs have fired, it keeps
// pressing until twice the latest first press and checks that every input
// fires again exactly at twice its first press and not in between. The
// first presses are then combined by LCM. If target receives low on the
// way, that press is returned directly. errPhaseOffset is returned when
// some input's emissions are not a plain multiple of its first press.
func (n *Network) untilAllInputsHigh(ctx context.Context, target, feeder, limit int) (int, error) {
	inputs := n.modules[feeder].inputs
	highs := make(map[int][]int, len(inputs))
	targetLow := false
	observe := func(s Signal) {
		switch {
		case s.To == feeder && s.High:
			h := highs[s.From]
			if len(h) < 2 && (len(h) == 0 || h[len(h)-1] != n.presses) {
				highs[s.From] = append(h, n.presses)
			}
		case s.To == target && !s.High:
			targetLow = true
		}
	}

	horizon := 0
	for n.presses < limit {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		n.tick(observe)
		if targetLow {
			return n.presses, nil
		}
		if horizon == 0 && len(highs) == len(inputs) {
			for _, in := range inputs {
				horizon = max(horizon, 2*highs[in][0])
			}
		}
		if horizon == 0 || n.presses < horizon {
			continue
		}

		periods := make([]int, 0, len(inputs))
		for _, in := range inputs {
			h := highs[in]
			if len(h) < 2 || h[1] != 2*h[0] {
				return 0, errPhaseOffset
			}
			periods = append(periods, h[0])
		}
		return LCM(periods...), nil
	}
	return 0, fmt.Errorf("%w: %d presses, %d of %d inputs seen", ErrLimitExceeded, limit, len(highs), len(inputs))
}

// independentFeeder reports the sole Threshold module feeding target when
// its inputs drive pairwise disjoint sub-networks: walking predecessors
// from each input, stopping at the broadcaster and the feeder, reaches no
// module reached from another input.
func (n *Network) independentFeeder(target int) (int, bool) {
	t := n.modules[target]
	if len(t.inputs) != 1 {
		return 0, false
	}
	feeder := t.inputs[0]
	f := n.modules[feeder]
	if f.kind != Threshold || len(f.inputs) < 2 {
		return 0, false
	}

	owner := make(map[int]int)
	for _, in := range f.inputs {
		if in == n.start {
			return 0, false
		}
		upstream, err := dfs.Reach([]int{in},
			func(id int) []int { return n.modules[id].inputs },
			func(id int) bool { return id != n.start && id != feeder })
		if err != nil {
			return 0, false
		}
		for _, id := range upstream {
			if o, taken := owner[id]; taken && o != in {
				return 0, false
			}
			owner[id] = in
		}
	}
	return feeder, true
}
