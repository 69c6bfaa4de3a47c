package pulse

import (
	"errors"

	"github.com/sirupsen/logrus"
)

var (
	// ErrMalformedLine indicates a configuration line that cannot be parsed.
	ErrMalformedLine = errors.New("pulse: malformed module line")
	// ErrDuplicateModule indicates a module declared twice.
	ErrDuplicateModule = errors.New("pulse: duplicate module")
	// ErrNoBroadcaster indicates a network without a broadcaster.
	ErrNoBroadcaster = errors.New("pulse: no broadcaster module")
	// ErrUnknownModule indicates a name that does not appear in the network.
	ErrUnknownModule = errors.New("pulse: unknown module")
	// ErrLimitExceeded indicates the press limit was reached without an answer.
	ErrLimitExceeded = errors.New("pulse: press limit exceeded")
)

// Log receives simulation diagnostics.
var Log = logrus.New()

// Broadcaster is the name of the module that receives button presses.
const Broadcaster = "broadcaster"

// Kind is the behaviour of a module.
type Kind uint8

const (
	// Sink accepts signals and does nothing.
	Sink Kind = iota
	// Broadcast forwards every signal unchanged.
	Broadcast
	// Toggle flips on low input and reports its new state.
	Toggle
	// Threshold emits low only when all remembered inputs are high.
	Threshold
)

// String returns the declaration prefix used in configuration text.
func (k Kind) String() string {
	switch k {
	case Broadcast:
		return "broadcast"
	case Toggle:
		return "%"
	case Threshold:
		return "&"
	default:
		return "sink"
	}
}

// Signal is one high or low pulse travelling along an edge.
// From is -1 for the button.
type Signal struct {
	From, To int
	High     bool
}

// TickStats summarises one button press.
type TickStats struct {
	Low, High int
	// WatchedLow is true when the watched module received a low signal.
	WatchedLow bool
}

// Counts aggregates several presses.
type Counts struct {
	Presses   int
	Low, High int
}

// Product returns Low × High.
func (c Counts) Product() int64 { return int64(c.Low) * int64(c.High) }

// module is one node of the network. Inputs are the predecessors in
// declaration order; slot maps a predecessor id to its memory index.
type module struct {
	name    string
	kind    Kind
	outputs []int
	inputs  []int
	slot    map[int]int

	on     bool
	memory []bool
	highs  int
}
