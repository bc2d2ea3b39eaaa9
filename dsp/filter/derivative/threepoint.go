package derivative

import "github.com/cwbudde/algo-sensorfilter/dsp/core"

// ThreePoint differentiates the quadratic through the last three samples,
// evaluated at the newest time. It is exact for quadratic signals.
type ThreePoint[T core.Value[T], Tm Timestamp] struct {
	history[T, Tm]
}

// NewThreePoint returns a three-point estimator with float32 timestamps.
func NewThreePoint[T core.Value[T]]() *ThreePoint[T, float32] {
	return &ThreePoint[T, float32]{newHistory[T, float32](3)}
}

// NewThreePoint32 returns a three-point estimator with uint32 timestamps.
func NewThreePoint32[T core.Value[T]]() *ThreePoint[T, uint32] {
	return &ThreePoint[T, uint32]{newHistory[T, uint32](3)}
}

// Derivative returns the estimate, or zero with fewer than three samples.
//
// With the oldest sample as origin, x1, t1 and x2, t2 are the offsets of
// the middle and newest samples and
//
//	dx/dt = (x1*t2^2 + x2*t1*(t1 - 2*t2)) / (t1*t2*(t1 - t2))
func (d *ThreePoint[T, Tm]) Derivative() T {
	if !d.ready() {
		var zero T
		return zero
	}
	p0, p1, p2 := d.rb.At(0), d.rb.At(1), d.rb.At(2)

	x1 := p1.Value.Sub(p0.Value)
	t1 := since(p0, p1)
	x2 := p2.Value.Sub(p0.Value)
	t2 := since(p0, p2)

	det := t1 * t2 * (t1 - t2)
	return x1.Mul(t2 * t2).Add(x2.Mul(t1 * (t1 - 2*t2))).Div(det)
}

// Filter pushes (x, t) and returns the derivative.
func (d *ThreePoint[T, Tm]) Filter(x T, t Tm) T {
	d.Push(x, t)
	return d.Derivative()
}
