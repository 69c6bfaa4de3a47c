// Package stateset provides the deduplication structures shared by every
// state-space search in this module.
//
// A search state is any comparable Go value, typically a struct combining a
// grid coordinate with an auxiliary discriminator such as heading, run
// length or step parity. Two states are equal iff all their fields match.
//
//   - Set[S] records which states have been seen. It never holds duplicates
//     and remembers insertion order, so iteration is deterministic.
//   - CostTable[S] records the best-known cost per state. Relax accepts only
//     strict improvements, so a recorded cost is monotonically
//     non-increasing.
//
// Both structures are owned by a single engine invocation and are not safe
// for concurrent use.
package stateset
