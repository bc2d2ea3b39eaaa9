// Package movavg provides a windowed moving-average filter.
package movavg

import (
	"fmt"

	"github.com/cwbudde/algo-sensorfilter/dsp/buffer"
	"github.com/cwbudde/algo-sensorfilter/dsp/core"
)

// Filter averages the most recent Window samples. Until the window has
// filled it returns the mean of the samples seen so far.
type Filter[T core.Value[T]] struct {
	samples *buffer.Ring[T]
	sum     T
	recip   float32 // 1/window
}

// New returns a moving average over window samples.
func New[T core.Value[T]](window int) (*Filter[T], error) {
	samples, err := buffer.New[T](window, buffer.Overwrite)
	if err != nil {
		return nil, fmt.Errorf("moving average window: %w", err)
	}
	return &Filter[T]{samples: samples, recip: 1 / float32(window)}, nil
}

// Filter adds input to the window and returns the current mean.
func (f *Filter[T]) Filter(input T) T {
	f.sum = f.sum.Add(input)
	if !f.samples.Full() {
		f.samples.Push(input)
		return f.sum.Mul(1 / float32(f.samples.Len()))
	}
	f.sum = f.sum.Sub(f.samples.Front())
	f.samples.Push(input)
	return f.sum.Mul(f.recip)
}

// FilterStep is Filter; the average does not depend on dt.
func (f *Filter[T]) FilterStep(input T, _ float32) T {
	return f.Filter(input)
}

// Reset empties the window.
func (f *Filter[T]) Reset() {
	var zero T
	f.sum = zero
	f.samples.Reset()
}

// Window returns the window length.
func (f *Filter[T]) Window() int { return f.samples.Capacity() }

// Len returns the number of samples currently averaged.
func (f *Filter[T]) Len() int { return f.samples.Len() }

// Sum returns the running sum of the samples in the window.
func (f *Filter[T]) Sum() T { return f.sum }
