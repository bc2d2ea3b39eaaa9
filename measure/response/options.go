package response

// DefaultFFTSize is the FFT length used by Analyze when none is given.
const DefaultFFTSize = 4096

// Config defines analysis settings.
type Config struct {
	FFTSize int
	// ProbeHz is the frequency reported in Analysis.ProbeGainDB. Zero
	// selects half the Nyquist frequency.
	ProbeHz float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the analysis defaults.
func DefaultConfig() Config {
	return Config{FFTSize: DefaultFFTSize}
}

// WithFFTSize sets the FFT length. It is validated by Analyze.
func WithFFTSize(n int) Option {
	return func(cfg *Config) {
		cfg.FFTSize = n
	}
}

// WithProbeFrequency sets the probe frequency in Hz. Non-positive values are
// ignored.
func WithProbeFrequency(hz float64) Option {
	return func(cfg *Config) {
		if hz > 0 {
			cfg.ProbeHz = hz
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
