package powertransfer

import "github.com/cwbudde/algo-sensorfilter/dsp/core"

// PT2 is a second-order power-transfer filter: two PT1 stages in series
// sharing one gain.
type PT2[T core.Value[T]] struct {
	k     float32
	state [2]T
}

// NewPT2 returns a second-order filter. A cutoff option is converted with
// [GainFromFrequency2]; without options the filter passes its input through.
func NewPT2[T core.Value[T]](opts ...core.FilterOption) *PT2[T] {
	cfg := core.ApplyFilterOptions(opts...)
	return &PT2[T]{k: gainFromConfig(cfg, GainFromFrequency2)}
}

// Init sets the gain and resets the state.
func (f *PT2[T]) Init(k float32) {
	f.k = k
	f.Reset()
}

// Reset zeroes both stages.
func (f *PT2[T]) Reset() {
	f.state = [2]T{}
}

// SetToPassthrough sets the gain to 1 and resets the state.
func (f *PT2[T]) SetToPassthrough() {
	f.k = 1
	f.Reset()
}

// Filter consumes one sample and returns the smoothed value.
// state[1] is fed by the input and state[0] is the output, so updating from
// the input side outwards needs no temporaries.
func (f *PT2[T]) Filter(input T) T {
	f.state[1] = f.state[1].Add(input.Sub(f.state[1]).Mul(f.k))
	f.state[0] = f.state[0].Add(f.state[1].Sub(f.state[0]).Mul(f.k))
	return f.state[0]
}

// FilterStep is Filter; the gain is fixed so dt is ignored.
func (f *PT2[T]) FilterStep(input T, _ float32) T {
	return f.Filter(input)
}

// SetCutoffFrequency retunes the gain, keeping the state.
func (f *PT2[T]) SetCutoffFrequency(cutoffHz, dt float32) {
	f.k = GainFromFrequency2(cutoffHz, dt)
}

// SetCutoffFrequencyAndReset retunes the gain and resets the state.
func (f *PT2[T]) SetCutoffFrequencyAndReset(cutoffHz, dt float32) {
	f.k = GainFromFrequency2(cutoffHz, dt)
	f.Reset()
}

// Gain returns the current per-stage gain.
func (f *PT2[T]) Gain() float32 { return f.k }

// State returns the stage states; index 0 is the output stage.
func (f *PT2[T]) State() [2]T { return f.state }
