package buffer

import (
	"fmt"
	"iter"
)

// Policy selects how a full Ring handles a push.
type Policy int

const (
	// Reject leaves a full buffer unchanged and reports the push as failed.
	Reject Policy = iota
	// Overwrite evicts the oldest element to make room for the new one.
	Overwrite
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case Reject:
		return "reject"
	case Overwrite:
		return "overwrite"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Ring is a fixed-capacity FIFO over a circular array.
//
// Ring is not safe for concurrent use.
type Ring[T any] struct {
	data   []T
	begin  int
	count  int
	policy Policy
}

// New returns an empty ring buffer with the given capacity and overflow policy.
func New[T any](capacity int, policy Policy) (*Ring[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("ring capacity must be > 0: %d", capacity)
	}
	if policy != Reject && policy != Overwrite {
		return nil, fmt.Errorf("unknown ring policy: %v", policy)
	}
	return &Ring[T]{data: make([]T, capacity), policy: policy}, nil
}

// Capacity returns the fixed number of slots.
func (r *Ring[T]) Capacity() int {
	return len(r.data)
}

// Len returns the number of live elements.
func (r *Ring[T]) Len() int {
	return r.count
}

// Policy returns the overflow policy.
func (r *Ring[T]) Policy() Policy {
	return r.policy
}

// Empty reports whether the buffer holds no elements.
func (r *Ring[T]) Empty() bool {
	return r.count == 0
}

// Full reports whether the buffer holds Capacity elements.
func (r *Ring[T]) Full() bool {
	return r.count == len(r.data)
}

// Push appends v as the newest element.
//
// With Reject, Push returns false and leaves the buffer unchanged when it is
// full. With Overwrite, Push always stores v, evicting the oldest element if
// necessary, and returns true.
func (r *Ring[T]) Push(v T) bool {
	n := len(r.data)
	if r.count == n {
		if r.policy == Reject {
			return false
		}
		r.data[r.begin] = v
		r.begin++
		if r.begin == n {
			r.begin = 0
		}
		return true
	}

	end := r.begin + r.count
	if end >= n {
		end -= n
	}
	r.data[end] = v
	r.count++
	return true
}

// PopFront removes and returns the oldest element.
// It returns false if the buffer is empty.
func (r *Ring[T]) PopFront() (T, bool) {
	var zero T
	if r.count == 0 {
		return zero, false
	}
	v := r.data[r.begin]
	r.data[r.begin] = zero
	r.begin++
	if r.begin == len(r.data) {
		r.begin = 0
	}
	r.count--
	return v, true
}

// Front returns the oldest element. The buffer must not be empty.
func (r *Ring[T]) Front() T {
	return r.data[r.begin]
}

// Back returns the newest element. The buffer must not be empty.
func (r *Ring[T]) Back() T {
	return r.data[r.index(r.count-1)]
}

// At returns the i-th oldest element, 0 <= i < Len().
//
// Out-of-range indices are a caller error; At does not check them against
// Len and may return a stale slot.
func (r *Ring[T]) At(i int) T {
	return r.data[r.index(i)]
}

// CopyTo writes the live elements oldest-first into dst and returns the
// number written. Elements of dst beyond that count are left untouched.
func (r *Ring[T]) CopyTo(dst []T) int {
	n := min(len(dst), r.count)
	first := min(n, len(r.data)-r.begin)
	copy(dst[:first], r.data[r.begin:r.begin+first])
	copy(dst[first:n], r.data[:n-first])
	return n
}

// All returns an iterator over the live elements, oldest first.
// Mutating the buffer while iterating invalidates the sequence.
func (r *Ring[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range r.count {
			if !yield(r.data[r.index(i)]) {
				return
			}
		}
	}
}

// Reset empties the buffer. Capacity and policy are unchanged.
func (r *Ring[T]) Reset() {
	clear(r.data)
	r.begin = 0
	r.count = 0
}

func (r *Ring[T]) index(i int) int {
	j := r.begin + i
	if j >= len(r.data) {
		j -= len(r.data)
	}
	return j
}
