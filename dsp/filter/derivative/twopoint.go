package derivative

import "github.com/cwbudde/algo-sensorfilter/dsp/core"

// TwoPoint is the backward difference over the last two samples.
type TwoPoint[T core.Value[T], Tm Timestamp] struct {
	history[T, Tm]
}

// NewTwoPoint returns a two-point estimator with float32 timestamps.
func NewTwoPoint[T core.Value[T]]() *TwoPoint[T, float32] {
	return &TwoPoint[T, float32]{newHistory[T, float32](2)}
}

// NewTwoPoint32 returns a two-point estimator with uint32 timestamps.
func NewTwoPoint32[T core.Value[T]]() *TwoPoint[T, uint32] {
	return &TwoPoint[T, uint32]{newHistory[T, uint32](2)}
}

// Derivative returns (x1 - x0) / (t1 - t0), or zero with fewer than two
// samples.
func (d *TwoPoint[T, Tm]) Derivative() T {
	if !d.ready() {
		var zero T
		return zero
	}
	p0, p1 := d.rb.Front(), d.rb.Back()
	return p1.Value.Sub(p0.Value).Div(since(p0, p1))
}

// Filter pushes (x, t) and returns the derivative.
func (d *TwoPoint[T, Tm]) Filter(x T, t Tm) T {
	d.Push(x, t)
	return d.Derivative()
}
