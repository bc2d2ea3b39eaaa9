// Package powertransfer provides power-transfer low-pass filters: cascades of
// one, two or three identical single-pole exponential smoothing stages.
//
// Each stage applies
//
//	state += (input - state) * k
//
// with a gain k in (0, 1]. A gain of 1 passes the input through unchanged.
// The gain is derived from a cutoff frequency and sample period with
// [GainFromFrequency], or from a time constant with [GainFromDelay]. For the
// second and third order filters the requested cutoff is scaled by
// [core.CutoffCorrection2] or [core.CutoffCorrection3] so that the -3 dB
// point of the whole cascade lands on the requested frequency.
package powertransfer
