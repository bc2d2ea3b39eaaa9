package core

// DefaultQ is the quality factor of a Butterworth-style second-order
// section, 1/sqrt(2).
const DefaultQ float32 = 0.70710678

// FilterConfig collects construction settings shared by the filter family.
//
// A filter is configured either by a raw dimensionless Gain in (0, 1] or by
// a cutoff frequency and sample period, which the filter converts to its own
// gain or coefficients. When both are present the cutoff wins.
type FilterConfig struct {
	Gain         float32
	CutoffHz     float32
	SamplePeriod float32
	Q            float32
	Weight       float32
}

// FilterOption mutates a FilterConfig.
type FilterOption func(*FilterConfig)

// DefaultFilterConfig returns a passthrough configuration.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		Gain:   1,
		Q:      DefaultQ,
		Weight: 1,
	}
}

// WithGain sets a raw gain. Values outside (0, 1] are ignored.
func WithGain(k float32) FilterOption {
	return func(cfg *FilterConfig) {
		if k > 0 && k <= 1 {
			cfg.Gain = k
		}
	}
}

// WithCutoff sets the cutoff frequency in Hz and the sample period in
// seconds. Non-positive values are ignored.
func WithCutoff(hz, dt float32) FilterOption {
	return func(cfg *FilterConfig) {
		if hz > 0 && dt > 0 {
			cfg.CutoffHz = hz
			cfg.SamplePeriod = dt
		}
	}
}

// WithQ sets the quality factor for second-order sections. Zero is ignored.
func WithQ(q float32) FilterOption {
	return func(cfg *FilterConfig) {
		if q != 0 {
			cfg.Q = q
		}
	}
}

// WithWeight sets the output blend weight, clamped to [0, 1].
func WithWeight(w float32) FilterOption {
	return func(cfg *FilterConfig) {
		cfg.Weight = Clamp(w, 0, 1)
	}
}

// HasCutoff reports whether a cutoff frequency and sample period were set.
func (c FilterConfig) HasCutoff() bool {
	return c.CutoffHz > 0 && c.SamplePeriod > 0
}

// ApplyFilterOptions applies zero or more options to the default config.
func ApplyFilterOptions(opts ...FilterOption) FilterConfig {
	cfg := DefaultFilterConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
