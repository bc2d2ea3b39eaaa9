package powertransfer

import "github.com/cwbudde/algo-sensorfilter/dsp/core"

// PT1 is a first-order power-transfer (exponential smoothing) filter.
type PT1[T core.Value[T]] struct {
	k     float32
	state T
}

// NewPT1 returns a first-order filter. Without options the gain is 1 and
// the filter passes its input through.
func NewPT1[T core.Value[T]](opts ...core.FilterOption) *PT1[T] {
	cfg := core.ApplyFilterOptions(opts...)
	return &PT1[T]{k: gainFromConfig(cfg, GainFromFrequency)}
}

// Init sets the gain and resets the state.
func (f *PT1[T]) Init(k float32) {
	f.k = k
	f.Reset()
}

// Reset zeroes the state.
func (f *PT1[T]) Reset() {
	var zero T
	f.state = zero
}

// SetToPassthrough sets the gain to 1 and resets the state.
func (f *PT1[T]) SetToPassthrough() {
	f.k = 1
	f.Reset()
}

// Filter consumes one sample and returns the smoothed value.
func (f *PT1[T]) Filter(input T) T {
	f.state = f.state.Add(input.Sub(f.state).Mul(f.k))
	return f.state
}

// FilterStep is Filter; the gain is fixed so dt is ignored.
func (f *PT1[T]) FilterStep(input T, _ float32) T {
	return f.Filter(input)
}

// SetCutoffFrequency retunes the gain, keeping the state.
func (f *PT1[T]) SetCutoffFrequency(cutoffHz, dt float32) {
	f.k = GainFromFrequency(cutoffHz, dt)
}

// SetCutoffFrequencyAndReset retunes the gain and resets the state.
func (f *PT1[T]) SetCutoffFrequencyAndReset(cutoffHz, dt float32) {
	f.k = GainFromFrequency(cutoffHz, dt)
	f.Reset()
}

// Gain returns the current gain.
func (f *PT1[T]) Gain() float32 { return f.k }

// State returns the stage state, which equals the last output.
func (f *PT1[T]) State() T { return f.state }
