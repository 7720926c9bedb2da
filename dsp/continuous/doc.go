// Package continuous models symbolic continuous-time signals.
//
// A Signal is a pure function from a time index in seconds to a complex
// amplitude. Elementary signals come from generator factories (impulse, step,
// sinusoids, triangle, square) and richer ones from combinators (Add, Scale,
// Modulate). Signals are immutable values; every combinator returns a new
// Signal and leaves its operands untouched. Sample bridges to the discrete
// domain by evaluating a signal over a half-open time interval.
package continuous
