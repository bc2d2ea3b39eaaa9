// Package biquad provides a second-order IIR filter for sensor smoothing.
//
// A [Filter] runs the direct form I recurrence
//
//	y[n] = b0*x[n] + b1*x[n-1] + b2*x[n-2] - a1*y[n-1] - a2*y[n-2]
//
// over any [core.Value] element type, with coefficients held as float32
// [Coefficients]. Low-pass and notch coefficients are synthesized from a
// frequency, the sample period (looptime) and a quality factor Q.
//
// [Filter.FilterWeighted] blends the filtered output with the raw input, so
// a notch can be faded in as a detected resonance grows.
//
// The analytic helpers on [Coefficients] (Response, MagnitudeDB, Poles) are
// evaluated in float64 and are meant for tests and tooling, not the
// per-sample path.
package biquad
