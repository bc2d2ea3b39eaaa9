package filter

// Filter is the one capability every smoothing filter provides: consume a
// sample and return the filtered value.
type Filter[T any] interface {
	Filter(input T) T
}

// StepFilter is a Filter that also accepts the time step since the previous
// sample. Filters with a fixed internal gain ignore dt.
type StepFilter[T any] interface {
	Filter[T]
	FilterStep(input T, dt float32) T
}

// Resetter is implemented by filters whose state can be cleared without
// touching their configuration.
type Resetter interface {
	Reset()
}

// Passthrougher is implemented by filters that can be switched to unity
// transfer.
type Passthrougher interface {
	SetToPassthrough()
}

// CutoffSetter is implemented by filters that can be retuned from a cutoff
// frequency and sample period.
type CutoffSetter interface {
	SetCutoffFrequency(cutoffHz, dt float32)
	SetCutoffFrequencyAndReset(cutoffHz, dt float32)
}

// Func adapts an ordinary function to the Filter interface.
type Func[T any] func(T) T

// Filter calls f(input).
func (f Func[T]) Filter(input T) T { return f(input) }

// ProcessBlock filters buf in place, one sample at a time in order.
func ProcessBlock[T any](f Filter[T], buf []T) {
	for i, x := range buf {
		buf[i] = f.Filter(x)
	}
}

// ProcessBlockTo filters src into dst. dst must be at least as long as src.
func ProcessBlockTo[T any](f Filter[T], dst, src []T) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.Filter(x)
	}
}
