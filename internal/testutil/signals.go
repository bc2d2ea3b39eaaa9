package testutil

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/cwbudde/algo-sensorfilter/measure/response"
)

// DeterministicSine generates a sine of freqHz sampled every dt seconds.
func DeterministicSine[F constraints.Float](freqHz, dt, amplitude float64, length int) []F {
	out := make([]F, length)
	step := 2 * math.Pi * freqHz * dt
	for i := range out {
		out[i] = F(amplitude * math.Sin(step*float64(i)))
	}
	return out
}

// DeterministicNoise converts response.WhiteNoise to F, so tests and the
// measurement tools draw the same records for the same seed.
func DeterministicNoise[F constraints.Float](seed int64, amplitude float64, length int) []F {
	out := make([]F, length)
	for i, v := range response.WhiteNoise(seed, amplitude, length) {
		out[i] = F(v)
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse[F constraints.Float](length, pos int) []F {
	out := make([]F, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC[F constraints.Float](value F, length int) []F {
	out := make([]F, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ramp generates start, start+slope, start+2*slope, ...
func Ramp[F constraints.Float](start, slope F, length int) []F {
	out := make([]F, length)
	for i := range out {
		out[i] = start + slope*F(i)
	}
	return out
}
