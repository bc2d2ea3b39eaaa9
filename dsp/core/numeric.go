package core

import (
	"math"

	"golang.org/x/exp/constraints"
)

// PiF is pi rounded to single precision.
const PiF float32 = 3.14159265358979323846

// Cutoff corrections shift the requested cutoff of an n-stage cascade of
// identical first-order sections so that the cascade's -3 dB point lands on
// the requested frequency. The value for order n is 1/sqrt(2^(1/n) - 1).
const (
	CutoffCorrection2 float32 = 1.553773974
	CutoffCorrection3 float32 = 1.961459177
)

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp[F constraints.Float](value, min, max F) F {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps, using an
// absolute comparison first and a relative one for large magnitudes.
func NearlyEqual[F constraints.Float](a, b, eps F) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := F(math.Abs(float64(a - b)))
	if diff <= eps {
		return true
	}

	largest := F(math.Max(math.Abs(float64(a)), math.Abs(float64(b))))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}
