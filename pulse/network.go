package pulse

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// Network is a parsed module graph together with its mutable state.
// It is not safe for concurrent use.
type Network struct {
	modules []*module
	index   map[string]int
	start   int
	watch   int
	presses int
}

// Parse builds a Network from lines of the form
//
//	broadcaster -> a, b
//	%a -> b
//	&inv -> a
//
// Blank lines are skipped. Undeclared destinations become sinks.
func Parse(text string) (*Network, error) {
	n := &Network{index: make(map[string]int), start: -1, watch: -1}
	declared := make(map[string]bool)
	type decl struct {
		id   int
		dsts []string
	}
	var decls []decl

	for lineNo, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		src, dst, ok := strings.Cut(line, "->")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: missing \"->\": %q", ErrMalformedLine, lineNo+1, line)
		}
		src = strings.TrimSpace(src)
		kind, name := Broadcast, src
		if src != Broadcaster {
			if len(src) < 2 {
				return nil, fmt.Errorf("%w: line %d: bad module %q", ErrMalformedLine, lineNo+1, src)
			}
			switch src[0] {
			case '%':
				kind = Toggle
			case '&':
				kind = Threshold
			default:
				return nil, fmt.Errorf("%w: line %d: unknown prefix in %q", ErrMalformedLine, lineNo+1, src)
			}
			name = src[1:]
		}
		if declared[name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateModule, name)
		}
		declared[name] = true

		var dsts []string
		for _, d := range strings.Split(dst, ",") {
			d = strings.TrimSpace(d)
			if d == "" {
				return nil, fmt.Errorf("%w: line %d: empty destination", ErrMalformedLine, lineNo+1)
			}
			dsts = append(dsts, d)
		}

		id := n.node(name)
		n.modules[id].kind = kind
		decls = append(decls, decl{id: id, dsts: dsts})
	}

	for _, d := range decls {
		for _, name := range d.dsts {
			to := n.node(name)
			n.modules[d.id].outputs = append(n.modules[d.id].outputs, to)
			m := n.modules[to]
			if _, dup := m.slot[d.id]; !dup {
				m.slot[d.id] = len(m.inputs)
				m.inputs = append(m.inputs, d.id)
			}
		}
	}

	id, ok := n.index[Broadcaster]
	if !ok {
		return nil, ErrNoBroadcaster
	}
	n.start = id
	n.Reset()

	Log.WithField("modules", len(n.modules)).Debug("pulse: network parsed")
	return n, nil
}

// node returns the id for name, creating a sink if it is new.
func (n *Network) node(name string) int {
	if id, ok := n.index[name]; ok {
		return id
	}
	id := len(n.modules)
	n.index[name] = id
	n.modules = append(n.modules, &module{name: name, kind: Sink, slot: make(map[int]int)})
	return id
}

// Reset returns every module to its initial state: toggles off, threshold
// memories low, press counter zero.
func (n *Network) Reset() {
	for _, m := range n.modules {
		m.on = false
		m.highs = 0
		if m.kind == Threshold {
			m.memory = make([]bool, len(m.inputs))
		}
	}
	n.presses = 0
}

// Watch selects the module whose low inputs are reported in TickStats.
func (n *Network) Watch(name string) error {
	id, ok := n.index[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownModule, name)
	}
	n.watch = id
	return nil
}

// Presses returns how many times the button has been pressed since Reset.
func (n *Network) Presses() int { return n.presses }

// Kind reports the kind of the named module.
func (n *Network) Kind(name string) (Kind, bool) {
	id, ok := n.index[name]
	if !ok {
		return Sink, false
	}
	return n.modules[id].kind, true
}

// Names returns all module names, sinks included, sorted.
func (n *Network) Names() []string {
	names := make([]string, 0, len(n.index))
	for name := range n.index {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Press pushes the button once and runs the cascade to quiescence.
func (n *Network) Press() TickStats {
	return n.tick(nil)
}

// tick runs one press, calling observe (if non-nil) for every signal in
// delivery order.
func (n *Network) tick(observe func(Signal)) TickStats {
	n.presses++
	var st TickStats
	queue := []Signal{{From: -1, To: n.start}}
	for head := 0; head < len(queue); head++ {
		sig := queue[head]
		if sig.High {
			st.High++
		} else {
			st.Low++
			if sig.To == n.watch {
				st.WatchedLow = true
			}
		}
		if observe != nil {
			observe(sig)
		}

		m := n.modules[sig.To]
		out, emit := n.receive(m, sig)
		if !emit {
			continue
		}
		for _, to := range m.outputs {
			queue = append(queue, Signal{From: sig.To, To: to, High: out})
		}
	}
	return st
}

// receive applies sig to m and reports the signal m emits, if any.
func (n *Network) receive(m *module, sig Signal) (high, emit bool) {
	switch m.kind {
	case Broadcast:
		return sig.High, true
	case Toggle:
		if sig.High {
			return false, false
		}
		m.on = !m.on
		return m.on, true
	case Threshold:
		i := m.slot[sig.From]
		if m.memory[i] != sig.High {
			m.memory[i] = sig.High
			if sig.High {
				m.highs++
			} else {
				m.highs--
			}
		}
		return m.highs != len(m.memory), true
	default:
		return false, false
	}
}

// CountPulses resets the network, presses the button presses times and
// returns the accumulated signal counts.
func (n *Network) CountPulses(presses int) Counts {
	n.Reset()
	c := Counts{Presses: presses}
	for i := 0; i < presses; i++ {
		st := n.Press()
		c.Low += st.Low
		c.High += st.High
	}
	Log.WithFields(logrus.Fields{
		"presses": presses,
		"low":     c.Low,
		"high":    c.High,
	}).Debug("pulse: counted")
	return c
}
