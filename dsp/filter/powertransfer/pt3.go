package powertransfer

import "github.com/cwbudde/algo-sensorfilter/dsp/core"

// PT3 is a third-order power-transfer filter: three PT1 stages in series
// sharing one gain.
type PT3[T core.Value[T]] struct {
	k     float32
	state [3]T
}

// NewPT3 returns a third-order filter. A cutoff option is converted with
// [GainFromFrequency3]; without options the filter passes its input through.
func NewPT3[T core.Value[T]](opts ...core.FilterOption) *PT3[T] {
	cfg := core.ApplyFilterOptions(opts...)
	return &PT3[T]{k: gainFromConfig(cfg, GainFromFrequency3)}
}

// Init sets the gain and resets the state.
func (f *PT3[T]) Init(k float32) {
	f.k = k
	f.Reset()
}

// Reset zeroes all three stages.
func (f *PT3[T]) Reset() {
	f.state = [3]T{}
}

// SetToPassthrough sets the gain to 1 and resets the state.
func (f *PT3[T]) SetToPassthrough() {
	f.k = 1
	f.Reset()
}

// Filter consumes one sample and returns the smoothed value.
func (f *PT3[T]) Filter(input T) T {
	f.state[2] = f.state[2].Add(input.Sub(f.state[2]).Mul(f.k))
	f.state[1] = f.state[1].Add(f.state[2].Sub(f.state[1]).Mul(f.k))
	f.state[0] = f.state[0].Add(f.state[1].Sub(f.state[0]).Mul(f.k))
	return f.state[0]
}

// FilterStep is Filter; the gain is fixed so dt is ignored.
func (f *PT3[T]) FilterStep(input T, _ float32) T {
	return f.Filter(input)
}

// SetCutoffFrequency retunes the gain, keeping the state.
func (f *PT3[T]) SetCutoffFrequency(cutoffHz, dt float32) {
	f.k = GainFromFrequency3(cutoffHz, dt)
}

// SetCutoffFrequencyAndReset retunes the gain and resets the state.
func (f *PT3[T]) SetCutoffFrequencyAndReset(cutoffHz, dt float32) {
	f.k = GainFromFrequency3(cutoffHz, dt)
	f.Reset()
}

// Gain returns the current per-stage gain.
func (f *PT3[T]) Gain() float32 { return f.k }

// State returns the stage states; index 0 is the output stage.
func (f *PT3[T]) State() [3]T { return f.state }
