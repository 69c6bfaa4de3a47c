// Package pulse simulates a network of modules exchanging high and low
// signals.
//
// Every module has a fixed list of outputs. Three kinds exist:
//
//   - Broadcast repeats each received signal to all outputs.
//   - Toggle ignores high signals; a low signal flips its on/off state and
//     it emits high when turning on, low when turning off.
//   - Threshold remembers the last signal from each predecessor (initially
//     low for all of them) and emits low only when every memory slot is
//     high, otherwise high.
//
// Destinations that are never declared are sinks: signals sent to them are
// counted but have no effect.
//
// A button press injects one low signal into the broadcaster and runs the
// resulting cascade as a single tick. Signals are processed strictly in
// the order they were emitted, so outcomes are deterministic.
//
// PressesUntilLow answers "after how many presses does target first receive
// a low signal". When the target is fed by a single Threshold module whose
// inputs drive disjoint sub-networks, each input's first high emission is
// found separately and the answers combine by least common multiple,
// provided every input fires again exactly at twice its first press.
// Otherwise presses are simulated directly up to a caller-supplied limit.
package pulse
