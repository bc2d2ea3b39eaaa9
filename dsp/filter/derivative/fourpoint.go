package derivative

import "github.com/cwbudde/algo-sensorfilter/dsp/core"

// FourPoint estimates the derivative at the newest of the last four
// samples from cubic-interpolation weights. The newest weight is chosen so
// the four weights sum to one, which makes the estimate an approximation:
// for x = t^2 sampled at t = 0..3 it returns 10 rather than 6.
type FourPoint[T core.Value[T], Tm Timestamp] struct {
	history[T, Tm]
}

// NewFourPoint returns a four-point estimator with float32 timestamps.
func NewFourPoint[T core.Value[T]]() *FourPoint[T, float32] {
	return &FourPoint[T, float32]{newHistory[T, float32](4)}
}

// NewFourPoint32 returns a four-point estimator with uint32 timestamps.
func NewFourPoint32[T core.Value[T]]() *FourPoint[T, uint32] {
	return &FourPoint[T, uint32]{newHistory[T, uint32](4)}
}

// Derivative returns the estimate, or zero with fewer than four samples.
func (d *FourPoint[T, Tm]) Derivative() T {
	if !d.ready() {
		var zero T
		return zero
	}
	p0, p1, p2, p3 := d.rb.At(0), d.rb.At(1), d.rb.At(2), d.rb.At(3)

	// Times relative to the oldest sample; the weights only depend on
	// differences, and uint32 ticks must be differenced before conversion.
	t1 := since(p0, p1)
	t2 := since(p0, p2)
	t3 := since(p0, p3)

	d0 := -(t1 * t2 * t3)
	d1 := t1 * (t1 - t2) * (t1 - t3)
	d2 := t2 * (t2 - t1) * (t2 - t3)

	a := (2*t3 - t1 - t2) / d0
	b := (2*t3 - t2) / d1
	c := (2*t3 - t1) / d2
	w := 1 - (a + b + c)

	return p0.Value.Mul(a).
		Add(p1.Value.Mul(b)).
		Add(p2.Value.Mul(c)).
		Add(p3.Value.Mul(w))
}

// Filter pushes (x, t) and returns the derivative.
func (d *FourPoint[T, Tm]) Filter(x T, t Tm) T {
	d.Push(x, t)
	return d.Derivative()
}
