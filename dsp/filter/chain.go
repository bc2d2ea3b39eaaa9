package filter

// Chain is an ordered cascade of filters processed in series: the output of
// each stage is the input of the next. Stages may be of different kinds.
type Chain[T any] struct {
	stages []Filter[T]
}

// NewChain creates a cascade from the given stages. Nil stages are skipped.
func NewChain[T any](stages ...Filter[T]) *Chain[T] {
	c := &Chain[T]{stages: make([]Filter[T], 0, len(stages))}
	for _, s := range stages {
		if s != nil {
			c.stages = append(c.stages, s)
		}
	}
	return c
}

// Filter cascades input through all stages in order. An empty chain is a
// passthrough.
func (c *Chain[T]) Filter(input T) T {
	for _, s := range c.stages {
		input = s.Filter(input)
	}
	return input
}

// FilterStep cascades input through all stages, forwarding dt to stages that
// accept a time step.
func (c *Chain[T]) FilterStep(input T, dt float32) T {
	for _, s := range c.stages {
		if sf, ok := s.(StepFilter[T]); ok {
			input = sf.FilterStep(input, dt)
			continue
		}
		input = s.Filter(input)
	}
	return input
}

// Reset resets every stage that implements Resetter.
func (c *Chain[T]) Reset() {
	for _, s := range c.stages {
		if r, ok := s.(Resetter); ok {
			r.Reset()
		}
	}
}

// SetToPassthrough switches every stage that implements Passthrougher to
// unity transfer.
func (c *Chain[T]) SetToPassthrough() {
	for _, s := range c.stages {
		if p, ok := s.(Passthrougher); ok {
			p.SetToPassthrough()
		}
	}
}

// Len returns the number of stages.
func (c *Chain[T]) Len() int {
	return len(c.stages)
}

// Stage returns the i-th stage for inspection or retuning.
func (c *Chain[T]) Stage(i int) Filter[T] {
	return c.stages[i]
}

// Append adds a stage to the end of the cascade.
func (c *Chain[T]) Append(s Filter[T]) {
	if s != nil {
		c.stages = append(c.stages, s)
	}
}
