package filter

// Null is a filter that returns its input unchanged. It carries the full
// uniform filter API so it can stand in where filtering is disabled.
type Null[T any] struct{}

// Init is a no-op.
func (Null[T]) Init(float32) {}

// Reset is a no-op.
func (Null[T]) Reset() {}

// SetToPassthrough is a no-op.
func (Null[T]) SetToPassthrough() {}

// SetCutoffFrequency is a no-op.
func (Null[T]) SetCutoffFrequency(_, _ float32) {}

// SetCutoffFrequencyAndReset is a no-op.
func (Null[T]) SetCutoffFrequencyAndReset(_, _ float32) {}

// Filter returns input.
func (Null[T]) Filter(input T) T { return input }

// FilterStep returns input.
func (Null[T]) FilterStep(input T, _ float32) T { return input }
