package derivative

import (
	"iter"

	"github.com/cwbudde/algo-sensorfilter/dsp/buffer"
	"github.com/cwbudde/algo-sensorfilter/dsp/core"
)

// Timestamp is a sample time: float32 seconds or uint32 ticks.
type Timestamp interface {
	~float32 | ~uint32
}

// Sample is one (value, time) observation.
type Sample[T any, Tm Timestamp] struct {
	Value T
	Time  Tm
}

// history is the sliding window shared by the estimators.
type history[T core.Value[T], Tm Timestamp] struct {
	rb *buffer.Ring[Sample[T, Tm]]
}

func newHistory[T core.Value[T], Tm Timestamp](points int) history[T, Tm] {
	rb, err := buffer.New[Sample[T, Tm]](points, buffer.Overwrite)
	if err != nil {
		panic("derivative: " + err.Error())
	}
	return history[T, Tm]{rb: rb}
}

// Push appends a sample, evicting the oldest once the window is full.
func (h history[T, Tm]) Push(x T, t Tm) {
	h.rb.Push(Sample[T, Tm]{Value: x, Time: t})
}

// Fill seeds the window with the points (i*x, i*dt), i = 0..k-1, so the
// first real sample yields a defined derivative. Existing samples are
// discarded.
func (h history[T, Tm]) Fill(x T, dt Tm) {
	h.rb.Reset()
	for i := range h.rb.Capacity() {
		h.rb.Push(Sample[T, Tm]{Value: x.Mul(float32(i)), Time: Tm(i) * dt})
	}
}

// Reset empties the window.
func (h history[T, Tm]) Reset() { h.rb.Reset() }

// Len returns the number of samples held.
func (h history[T, Tm]) Len() int { return h.rb.Len() }

// Points returns the window size.
func (h history[T, Tm]) Points() int { return h.rb.Capacity() }

// Samples iterates the window oldest to newest.
func (h history[T, Tm]) Samples() iter.Seq[Sample[T, Tm]] { return h.rb.All() }

func (h history[T, Tm]) ready() bool { return h.rb.Full() }

// since returns b.Time - a.Time as float32, differenced in Tm.
func since[T any, Tm Timestamp](a, b Sample[T, Tm]) float32 {
	return float32(b.Time - a.Time)
}
