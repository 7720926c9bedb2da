// Package discrete models finite discrete-time signals.
//
// A Signal holds an ordered sequence of complex samples together with a
// sample rate. Signals are immutable: every operation returns a new Signal
// and reads outside the stored range yield zero, which shift and
// differentiate rely on at the boundaries.
package discrete
