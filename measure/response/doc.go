// Package response measures the behaviour of a sensor filter by driving it
// with synthetic input.
//
// It captures impulse and step responses, computes the magnitude response
// with an FFT of the impulse response, and reduces that to a few numbers a
// tuning tool can print:
//
//   - DC gain in dB (0 dB for every low-pass in this module)
//   - the -3 dB cutoff, linearly interpolated between FFT bins
//   - the gain at a probe frequency, e.g. a motor vibration line
//   - the noise reduction ratio for a given noise record
//
// # Usage
//
//	pt := powertransfer.NewPT2[core.Scalar](core.WithCutoff(20, 0.001))
//	a, err := response.Analyze(pt, 0.001, response.WithProbeFrequency(150))
//	fmt.Printf("fc = %.1f Hz, 150 Hz at %.1f dB\n", a.CutoffHz, a.ProbeGainDB)
//
// Analysis resets the filter before and after measuring when it implements
// filter.Resetter; filters without Reset keep whatever state the
// measurement leaves behind.
package response
