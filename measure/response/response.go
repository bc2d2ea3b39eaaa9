package response

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-sensorfilter/dsp/core"
	"github.com/cwbudde/algo-sensorfilter/dsp/filter"
)

var (
	// ErrInvalidFFTSize is returned for FFT sizes that are not a power of
	// two of at least 2.
	ErrInvalidFFTSize = errors.New("response: fft size must be a power of two >= 2")
	// ErrInvalidSamplePeriod is returned for non-positive sample periods.
	ErrInvalidSamplePeriod = errors.New("response: sample period must be > 0")
)

// halfPowerDB is 10*log10(2).
const halfPowerDB = 3.010299956639812

// Analysis summarizes a filter's frequency response.
type Analysis struct {
	SamplePeriod float64
	FFTSize      int

	DCGainDB float64
	// CutoffHz is the first frequency where the gain falls 3 dB below the DC
	// gain, or 0 if it never does below Nyquist.
	CutoffHz float64

	ProbeHz     float64
	ProbeGainDB float64
}

// ImpulseResponse feeds a unit impulse followed by n-1 zeros through f and
// returns the n outputs.
func ImpulseResponse(f filter.Filter[core.Scalar], n int) []float64 {
	if n <= 0 {
		return nil
	}
	reset(f)
	out := make([]float64, n)
	out[0] = float64(f.Filter(1))
	for i := 1; i < n; i++ {
		out[i] = float64(f.Filter(0))
	}
	return out
}

// StepResponse feeds n ones through f and returns the outputs.
func StepResponse(f filter.Filter[core.Scalar], n int) []float64 {
	if n <= 0 {
		return nil
	}
	reset(f)
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(f.Filter(1))
	}
	return out
}

// MagnitudeResponse returns |H(k)| for bins 0..fftSize/2 of the zero-padded
// FFT of ir. Samples past fftSize are ignored.
func MagnitudeResponse(ir []float64, fftSize int) ([]float64, error) {
	if fftSize < 2 || bits.OnesCount(uint(fftSize)) != 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFFTSize, fftSize)
	}

	in := make([]complex128, fftSize)
	for i, v := range ir[:min(len(ir), fftSize)] {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: fft plan: %w", err)
	}
	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, in); err != nil {
		return nil, fmt.Errorf("response: fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(freq[k])
		im[k] = imag(freq[k])
	}
	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)
	return mag, nil
}

// Analyze measures f at sample period dt seconds.
func Analyze(f filter.Filter[core.Scalar], dt float64, opts ...Option) (Analysis, error) {
	if !(dt > 0) {
		return Analysis{}, fmt.Errorf("%w: %v", ErrInvalidSamplePeriod, dt)
	}
	cfg := ApplyOptions(opts...)

	mag, err := MagnitudeResponse(ImpulseResponse(f, cfg.FFTSize), cfg.FFTSize)
	if err != nil {
		return Analysis{}, err
	}
	reset(f)

	binHz := 1 / (float64(cfg.FFTSize) * dt)
	probe := cfg.ProbeHz
	if probe == 0 {
		probe = 0.25 / dt
	}

	a := Analysis{
		SamplePeriod: dt,
		FFTSize:      cfg.FFTSize,
		DCGainDB:     gainDB(mag[0]),
		ProbeHz:      probe,
	}
	a.CutoffHz = cutoff(mag, a.DCGainDB-halfPowerDB, binHz)

	k := min(int(math.Round(probe/binHz)), len(mag)-1)
	a.ProbeGainDB = gainDB(mag[k])
	return a, nil
}

// NoiseReduction filters noise through f and returns the ratio of output to
// input standard deviation. Values below 1 mean the filter attenuates the
// noise. At least two samples are needed for a finite result.
func NoiseReduction(f filter.Filter[core.Scalar], noise []float64) float64 {
	reset(f)
	out := make([]float64, len(noise))
	for i, x := range noise {
		out[i] = float64(f.Filter(core.Scalar(x)))
	}
	reset(f)
	return stat.StdDev(out, nil) / stat.StdDev(noise, nil)
}

// SettlingIndex returns the first index after which step stays within tol
// of its last value. An empty record returns 0.
func SettlingIndex(step []float64, tol float64) int {
	if len(step) == 0 {
		return 0
	}
	final := step[len(step)-1]
	for i := len(step) - 1; i >= 0; i-- {
		if math.Abs(step[i]-final) > tol {
			return i + 1
		}
	}
	return 0
}

// cutoff returns the interpolated frequency of the first bin below
// thresholdDB.
func cutoff(mag []float64, thresholdDB, binHz float64) float64 {
	prev := gainDB(mag[0])
	for k := 1; k < len(mag); k++ {
		cur := gainDB(mag[k])
		if cur < thresholdDB {
			frac := 1.0
			if prev != cur {
				frac = (prev - thresholdDB) / (prev - cur)
			}
			return (float64(k-1) + frac) * binHz
		}
		prev = cur
	}
	return 0
}

func gainDB(m float64) float64 {
	return core.LinearToDB(m)
}

func reset(f any) {
	if r, ok := f.(filter.Resetter); ok {
		r.Reset()
	}
}
