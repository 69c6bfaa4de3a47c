package cycle

import (
	"github.com/sirupsen/logrus"
)

// Log receives cycle-detection diagnostics. Callers may replace its
// output, level or formatter.
var Log = logrus.New()

// Report describes how Repeat reached its answer.
type Report struct {
	// Applied is the number of transformations actually computed or
	// replayed, always <= the requested count.
	Applied int
	// Detected is true when a repeating snapshot was found.
	Detected bool
	// FirstSeen is the index at which the repeating snapshot first occurred.
	FirstSeen int
	// Period is the cycle length; zero when Detected is false.
	Period int
	// Cache reports the snapshot → next snapshot memo.
	Cache Stats
}

// Repeat applies step to start n times and returns the final state.
// key must map equal states to equal strings; it identifies snapshots.
// step must be deterministic. A non-positive n returns start unchanged.
func Repeat[S any](start S, n int, key func(S) string, step func(S) S) (S, Report) {
	var rep Report
	memo := NewMemo[string, S]()
	firstSeen := make(map[string]int)

	cur := start
	for i := 0; i < n; i++ {
		k := key(cur)
		if f, ok := firstSeen[k]; ok {
			rep.Detected = true
			rep.FirstSeen = f
			rep.Period = i - f
			cur = replay(cur, (n-i)%rep.Period, key, memo)
			rep.Applied = i + (n-i)%rep.Period
			rep.Cache = memo.Stats()
			Log.WithFields(logrus.Fields{
				"first_seen": rep.FirstSeen,
				"period":     rep.Period,
				"requested":  n,
				"applied":    rep.Applied,
			}).Debug("cycle: repeating snapshot detected")
			return cur, rep
		}
		firstSeen[k] = i
		cur = memo.GetOrCompute(k, func() S { return step(cur) })
	}

	rep.Applied = max(n, 0)
	rep.Cache = memo.Stats()
	Log.WithFields(logrus.Fields{
		"requested": n,
		"cache":     rep.Cache.Size,
	}).Debug("cycle: finished without repeat")
	return cur, rep
}

// replay advances cur by count steps using only cached transitions.
func replay[S any](cur S, count int, key func(S) string, memo *Memo[string, S]) S {
	for j := 0; j < count; j++ {
		next, ok := memo.Get(key(cur))
		if !ok {
			// Every snapshot on the cycle was recorded before the repeat.
			panic("cycle: snapshot on detected cycle missing from cache")
		}
		cur = next
	}
	return cur
}
