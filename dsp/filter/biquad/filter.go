package biquad

import "github.com/cwbudde/algo-sensorfilter/dsp/core"

// State is the direct form I history of a Filter.
type State[T any] struct {
	X1, X2 T
	Y1, Y2 T
}

// Filter is a direct form I biquad over element type T.
//
// Besides its coefficients a Filter remembers the sample period and Q it was
// last tuned with, so the Set*Frequency methods can retune it from a single
// frequency argument.
type Filter[T core.Value[T]] struct {
	c      Coefficients
	weight float32
	state  State[T]

	twoQRecip float32 // 1/(2q)
	twoPiDt   float32 // 2*pi*looptime
}

// New returns a filter with coefficients c and weight 1. Q defaults to 0.5
// and the looptime to zero until set.
func New[T core.Value[T]](c Coefficients) *Filter[T] {
	return &Filter[T]{c: c, weight: 1, twoQRecip: 1}
}

// NewPassthrough returns a filter with unity transfer.
func NewPassthrough[T core.Value[T]]() *Filter[T] {
	return New[T](Passthrough())
}

// NewLowPass returns a low-pass filter for cutoff hz at sample period dt.
// Q and the blend weight come from opts (core.WithQ, core.WithWeight).
func NewLowPass[T core.Value[T]](hz, dt float32, opts ...core.FilterOption) *Filter[T] {
	cfg := core.ApplyFilterOptions(opts...)
	f := NewPassthrough[T]()
	f.InitLowPass(hz, dt, cfg.Q)
	f.weight = cfg.Weight
	return f
}

// NewNotch returns a notch filter centred on hz at sample period dt.
// Q and the blend weight come from opts (core.WithQ, core.WithWeight).
func NewNotch[T core.Value[T]](hz, dt float32, opts ...core.FilterOption) *Filter[T] {
	cfg := core.ApplyFilterOptions(opts...)
	f := NewPassthrough[T]()
	f.InitNotch(hz, dt, cfg.Q)
	f.weight = cfg.Weight
	return f
}

// Filter consumes one sample. The weight is not applied.
func (f *Filter[T]) Filter(input T) T {
	s := &f.state
	out := input.Mul(f.c.B0).
		Add(s.X1.Mul(f.c.B1)).
		Add(s.X2.Mul(f.c.B2)).
		Sub(s.Y1.Mul(f.c.A1)).
		Sub(s.Y2.Mul(f.c.A2))

	s.X2 = s.X1
	s.X1 = input
	s.Y2 = s.Y1
	s.Y1 = out
	return out
}

// FilterStep is Filter; the coefficients are fixed so dt is ignored.
func (f *Filter[T]) FilterStep(input T, _ float32) T {
	return f.Filter(input)
}

// FilterWeighted filters input and blends the result with it:
// weight 1 gives the filtered output, weight 0 gives the input.
func (f *Filter[T]) FilterWeighted(input T) T {
	out := f.Filter(input)
	return out.Sub(input).Mul(f.weight).Add(input)
}

// SetWeight sets the blend weight used by FilterWeighted. The weight is
// expected in [0, 1].
func (f *Filter[T]) SetWeight(w float32) { f.weight = w }

// Weight returns the blend weight.
func (f *Filter[T]) Weight() float32 { return f.weight }

// SetParameters replaces coefficients and weight, keeping the state.
func (f *Filter[T]) SetParameters(c Coefficients, weight float32) {
	f.c = c
	f.weight = weight
}

// SetCoefficients replaces the coefficients and sets the weight to 1.
func (f *Filter[T]) SetCoefficients(c Coefficients) {
	f.SetParameters(c, 1)
}

// CopyParameters copies coefficients and weight from other. The state, Q
// and looptime of f are untouched.
func (f *Filter[T]) CopyParameters(other *Filter[T]) {
	f.c = other.c
	f.weight = other.weight
}

// Coefficients returns the current coefficients.
func (f *Filter[T]) Coefficients() Coefficients { return f.c }

// Reset zeroes the history.
func (f *Filter[T]) Reset() {
	f.state = State[T]{}
}

// SetToPassthrough sets unity coefficients, weight 1, and resets.
func (f *Filter[T]) SetToPassthrough() {
	f.c = Passthrough()
	f.weight = 1
	f.Reset()
}

// InitLowPass sets looptime and Q, tunes a low-pass at hz and resets.
// It panics if q is zero.
func (f *Filter[T]) InitLowPass(hz, dt, q float32) {
	f.SetLooptime(dt)
	f.SetQ(q)
	f.SetLowPassFrequency(hz)
	f.Reset()
}

// InitNotch sets looptime and Q, tunes a notch at hz and resets.
// It panics if q is zero.
func (f *Filter[T]) InitNotch(hz, dt, q float32) {
	f.SetLooptime(dt)
	f.SetQ(q)
	f.SetNotchFrequency(hz)
	f.Reset()
}

// SetLooptime sets the sample period in seconds used by the frequency
// setters.
func (f *Filter[T]) SetLooptime(dt float32) {
	f.twoPiDt = 2 * core.PiF * dt
}

// SetQ sets the quality factor used by the frequency setters. It panics if
// q is zero.
func (f *Filter[T]) SetQ(q float32) {
	f.twoQRecip = twoQReciprocal(q)
}

// SetQFromCutoff sets Q from a notch centre and its lower cutoff.
func (f *Filter[T]) SetQFromCutoff(centerHz, lowerCutoffHz float32) {
	f.SetQ(CalculateQ(centerHz, lowerCutoffHz))
}

// Q returns the quality factor.
func (f *Filter[T]) Q() float32 {
	return (1 / f.twoQRecip) / 2
}

// CalculateOmega returns 2*pi*hz*looptime.
func (f *Filter[T]) CalculateOmega(hz float32) float32 {
	return hz * f.twoPiDt
}

// SetLowPassFrequency retunes the low-pass to hz with weight 1, keeping
// the state.
func (f *Filter[T]) SetLowPassFrequency(hz float32) {
	f.SetLowPassFrequencyWeighted(hz, 1)
}

// SetLowPassFrequencyWeighted retunes the low-pass to hz and sets the
// weight, keeping the state.
func (f *Filter[T]) SetLowPassFrequencyWeighted(hz, weight float32) {
	f.weight = weight
	f.c = lowPassFromOmega(f.CalculateOmega(hz), f.twoQRecip)
}

// SetNotchFrequency retunes the notch to hz with weight 1, keeping the
// state.
func (f *Filter[T]) SetNotchFrequency(hz float32) {
	f.SetNotchFrequencyWeighted(hz, 1)
}

// SetNotchFrequencyWeighted retunes the notch to hz and sets the weight,
// keeping the state.
func (f *Filter[T]) SetNotchFrequencyWeighted(hz, weight float32) {
	sin, cos := sincos(f.CalculateOmega(hz))
	f.SetNotchFrequencyFromSinCos(sin, 2*cos, weight)
}

// SetNotchFrequencyFromSinCos retunes the notch from precomputed sin(omega)
// and 2*cos(omega) and sets the weight.
func (f *Filter[T]) SetNotchFrequencyFromSinCos(sinOmega, twoCosOmega, weight float32) {
	f.weight = weight
	f.c = notchFromSinCos(sinOmega, twoCosOmega, f.twoQRecip)
}

// SetNotchFrequencyFromCutoff sets Q from the centre and lower cutoff
// frequencies, then retunes the notch to centerHz.
func (f *Filter[T]) SetNotchFrequencyFromCutoff(centerHz, lowerCutoffHz float32) {
	f.SetQFromCutoff(centerHz, lowerCutoffHz)
	f.SetNotchFrequency(centerHz)
}

// State returns the filter history.
func (f *Filter[T]) State() State[T] { return f.state }
