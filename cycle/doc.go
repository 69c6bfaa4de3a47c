// Package cycle skips long runs of a repeated deterministic transformation
// by memoizing transitions and detecting the period of the state sequence.
//
// Applying the same transformation to a finite state space must eventually
// revisit a prior state. Repeat records the index at which every snapshot
// was first seen and caches snapshot → next snapshot. On the first repeat
// at index i of a snapshot first seen at index f, the period is i-f, and
// the state after n applications equals the state after
// ((n-f) mod period) + f applications; only that remainder is replayed,
// entirely from the cache.
//
// Memo is the general transition cache. Callers may layer finer-grained
// memos (for example one per tilt direction) purely for throughput.
//
// Diagnostics (cache hits, detected period) are logged at Debug level on
// Log; nothing is printed.
package cycle
